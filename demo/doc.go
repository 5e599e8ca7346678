// Package demo runs the canonical pipeline on each stream engine:
//
//	filter even -> map to "[x]" -> flatMap to runes -> forEach emit
//
// For the input 1..5 every engine emits "[2][4]".
package demo
