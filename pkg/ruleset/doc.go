// Package ruleset loads named validator option sets from YAML, JSON or TOML
// documents.
//
// A document has two optional sections, one per validator entry point. Each
// maps a rule name to an option map keyed exactly like the validator options:
//
//	strings:
//	  username:
//	    minStringLength: 3
//	    maxStringLength: 20
//	    regexPattern: USERNAME
//	numbers:
//	  age: {minValue: 0, maxValue: 150, isInteger: true}
//
// Every rule is normalised and its pattern resolved when the document is
// parsed, so an unknown option key or pattern name fails the load instead of
// the first validation that uses it.
//
//	set, err := ruleset.Load("rules.yaml")
//	if err != nil {
//	    return err
//	}
//	res, err := set.ValidateString("username", input)
//
// A rule always validates one value. Sets do not describe objects or combine
// fields.
package ruleset
