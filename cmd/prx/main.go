// Prx compiles and runs PRX patterns from the command line.
//
// Usage:
//
//	# Show the regular expression a pattern compiles to
//	prx parse 'start[charU+charL]+end'
//
//	# Test, match and replace
//	prx test 'startdigit+end' 12345
//	prx match --flags g 'digit+' 'a12b3'
//	prx replace '(digit+)' 'a12b3' '<$1>'
//
//	# Report problems and every compilation stage
//	prx validate '[9-0]'
//	prx debug --format json '[charU&digit]{6,}'
//
//	# Compile every pattern of a file, one per line
//	prx batch patterns.prx
package main

func main() {
	Execute()
}
