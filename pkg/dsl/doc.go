/*
Package dsl provides a Go DSL for programmatically declaring compositions.

It wraps the domain constructors in a fluent builder so that whole
architectures (seed data, tests, templates) read top to bottom. Errors raised
by the domain while declaring members are collected and reported by Build.

Example usage:

	k, err := dsl.New("Compo21").
		Component("swc1", "application").
		Sender("speed").
		Periodic("step", "10ms").
		Component("swc3", "Sensor").
		Receiver("speed").
		Aperiodic("init").
		Build()
	if err != nil {
		// duplicate names or inconsistent runnables
	}
*/
package dsl
