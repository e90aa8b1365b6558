package domain

import "fmt"

// Profile names an input export and where its reports go
type Profile struct {
	Name   string
	Source string
	Output string
}

func (p Profile) String() string {
	return fmt.Sprintf("%s:%s", p.Name, p.Source)
}
