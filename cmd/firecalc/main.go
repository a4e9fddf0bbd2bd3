// Command firecalc runs the FIRE calculators from the command line.
package main

func main() {
	Execute()
}
