package cli

import (
	"fmt"
	"strings"

	"github.com/aretw0/composer"
	"github.com/aretw0/composer/internal/presentation/tree"
	"github.com/aretw0/composer/pkg/domain"
)

type command struct {
	key   string
	label string
	run   func(*Session) error
	exit  bool
}

// menu numbering is stable: 5 exits and 6 adds runnables; new options go last.
var menu = []command{
	{key: "1", label: "Create software composition", run: (*Session).createComposition},
	{key: "2", label: "Create software component", run: (*Session).createComponent},
	{key: "3", label: "Create Port", run: (*Session).createPort},
	{key: "4", label: "Display the architecture", run: (*Session).display},
	{key: "5", label: "Exit", exit: true},
	{key: "6", label: "Create a runnable", run: (*Session).createRunnable},
	{key: "7", label: "Clone a software component", run: (*Session).cloneComponent},
	{key: "8", label: "List software components", run: (*Session).listComponents},
}

func lookupCommand(choice string) (command, bool) {
	switch strings.ToLower(choice) {
	case "q", "quit", "exit":
		return command{key: "5", label: "Exit", exit: true}, true
	}
	for _, cmd := range menu {
		if cmd.key == choice {
			return cmd, true
		}
	}
	return command{}, false
}

func (s *Session) createComposition() error {
	name, err := s.prompt("Enter the name for your software composition: ")
	if err != nil {
		return err
	}
	if name == "" {
		return fmt.Errorf("composition name is empty")
	}

	if s.composition != nil {
		s.logger.Info("Composition Replaced", "previous", s.composition.Name)
	}
	s.composition = composer.CreateComposition(name)
	s.logger.Info("Composition Created", "composition", name)
	s.println("The composition '%s' has been successfully created.", name)
	return nil
}

func (s *Session) createComponent() error {
	k, err := s.requireComposition()
	if err != nil {
		return err
	}

	name, swcType, err := s.promptPair("Enter the name for your SWC and type (separated by space): ")
	if err != nil {
		return err
	}

	sw := composer.CreateComponent(name, swcType)
	if err := composer.AddComponentToComposition(k, sw); err != nil {
		return err
	}
	s.logger.Info("Component Added", "composition", k.Name, "component", name, "type", swcType)
	s.println("The software component '%s' has been successfully created.", name)
	return s.listComponents()
}

func (s *Session) createPort() error {
	sw, err := s.selectComponent("Choose the swc that you want to associate to a port: ")
	if err != nil {
		return err
	}

	name, direction, err := s.promptPair("Enter the name of the port and its direction (separated by space): ")
	if err != nil {
		return err
	}

	if err := composer.AddPortToComponent(sw, composer.CreatePort(name, direction)); err != nil {
		return err
	}
	s.logger.Info("Port Added", "component", sw.Name(), "port", name, "direction", direction)
	s.println("Port '%s' has been successfully created.", name)
	s.printComponent(sw)
	return nil
}

func (s *Session) createRunnable() error {
	sw, err := s.selectComponent("Choose the swc that you want to associate to a runnable: ")
	if err != nil {
		return err
	}

	name, trigger, err := s.promptPair("Enter the name of the runnable and its trigger (separated by space): ")
	if err != nil {
		return err
	}

	// The period is collected here so the model only sees resolved arguments.
	var period []string
	if domain.NormalizeTrigger(trigger) == domain.TriggerPeriodic {
		p, err := s.prompt("Enter the period of the runnable: ")
		if err != nil {
			return err
		}
		period = append(period, p)
	}

	r, err := composer.CreateRunnable(name, trigger, period...)
	if err != nil {
		return err
	}
	if err := composer.AddRunnableToComponent(sw, r); err != nil {
		return err
	}
	s.logger.Info("Runnable Added", "component", sw.Name(), "runnable", name, "trigger", r.Trigger, "period", r.Period)
	s.println("Runnable '%s' has been successfully created.", name)
	s.printComponent(sw)
	return nil
}

func (s *Session) cloneComponent() error {
	src, err := s.selectComponent("Choose the swc that you want to clone: ")
	if err != nil {
		return err
	}

	name, err := s.prompt("Enter the name for the copy: ")
	if err != nil {
		return err
	}
	if name == "" {
		return fmt.Errorf("component name is empty")
	}

	clone := src.CloneAs(name)
	if err := composer.AddComponentToComposition(s.composition, clone); err != nil {
		return err
	}
	s.logger.Info("Component Cloned", "source", src.Name(), "component", name)
	s.println("The software component '%s' has been cloned as '%s'.", src.Name(), name)
	return s.listComponents()
}

func (s *Session) listComponents() error {
	k, err := s.requireComposition()
	if err != nil {
		return err
	}

	names := k.ComponentNames()
	if len(names) == 0 {
		s.println("The composition '%s' has no SWCs yet.", k.Name)
		return nil
	}
	s.println("The SWCs associated to this composition are:")
	for _, name := range names {
		s.println("  %s", name)
	}
	return nil
}

func (s *Session) display() error {
	k, err := s.requireComposition()
	if err != nil {
		return err
	}

	if s.renderer != nil {
		out, err := s.renderer(tree.Markdown(k))
		if err == nil {
			fmt.Fprint(s.writer, out)
			return nil
		}
		s.logger.Warn("Rich Rendering Failed", "error", err)
	}
	fmt.Fprint(s.writer, composer.Render(k))
	return nil
}

// selectComponent lists the components and resolves the one the user names.
func (s *Session) selectComponent(label string) (*domain.Component, error) {
	if err := s.listComponents(); err != nil {
		return nil, err
	}

	name, err := s.prompt(label)
	if err != nil {
		return nil, err
	}
	sw, ok := composer.FindComponent(s.composition, name)
	if !ok {
		return nil, fmt.Errorf("software component '%s' not found in '%s'", name, s.composition.Name)
	}
	return sw, nil
}

func (s *Session) printComponent(sw *domain.Component) {
	fmt.Fprintln(s.writer)
	fmt.Fprint(s.writer, tree.RenderComponent(sw))
}
