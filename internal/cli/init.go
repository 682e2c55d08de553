package cli

import "fmt"

type InitCmd struct{}

func (c *InitCmd) Run(ctx *Context) error {
	if err := ctx.Backend.Init(); err != nil {
		return err
	}

	fmt.Printf("Initialized ritual storage at %s\n", ctx.Backend.Path())
	return nil
}
