package main

import "fmt"

type versionCmd struct {
	*root
}

func (v *versionCmd) Run() error {
	fmt.Printf("%s version %s", v.program, version)
	if commit != "" {
		fmt.Printf(" (%s", commit)
		if date != "" {
			fmt.Printf(", %s", date)
		}
		fmt.Print(")")
	}
	fmt.Println()
	return nil
}
