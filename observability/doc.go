// Package observability provides OpenTelemetry metrics and tracing for
// stream pipeline runs.
//
// Tracing:
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("streamdemo"))
//	defer tp.Shutdown(ctx)
//
//	ctx, span := observability.StartSpan(ctx, "stream.run")
//	defer span.End()
//
// Metrics:
//
//	mp, err := observability.InitMeter(ctx, observability.DefaultMeterConfig("streamdemo"))
//	defer mp.Shutdown(ctx)
//
//	metrics, err := observability.NewMetrics(observability.Meter("streamdemo"))
//	metrics.RecordRun(ctx, "staged", "ok", duration)
//
// Runs:
//
//	run := observability.NewRunContext("pull", metrics)
//	ctx, span := run.Start(ctx)
//	...
//	run.End(ctx, span, n, err)
package observability
