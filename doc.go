/*
Package composer builds small in-memory models of a software architecture.

A Composition contains Components; each Component owns named Ports (sender or
receiver) and Runnables (periodic with a period, or aperiodic). The package
exposes one function per operation an interactive front-end needs, always
taking the active composition explicitly:

	k := composer.CreateComposition("Compo21")

	swc := composer.CreateComponent("swc1", "application")
	if err := composer.AddComponentToComposition(k, swc); err != nil {
		// errors.Is(err, domain.ErrDuplicateName)
	}

	_ = composer.AddPortToComponent(swc, composer.CreatePort("speed", "sender"))

	step, err := composer.CreateRunnable("step", "periodic", "10")
	if err == nil {
		_ = composer.AddRunnableToComponent(swc, step)
	}

	fmt.Print(composer.Render(k))

Looking up a component never fails: FindComponent reports absence through its
boolean result, and callers check it before adding ports or runnables.

The model holds no global state and is not safe for concurrent use.
*/
package composer
