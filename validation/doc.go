// Package validation checks configuration structs against `validate` tags
// using go-playground/validator.
//
//	type Config struct {
//	    Host string `mapstructure:"host" validate:"required"`
//	    Port string `mapstructure:"port" validate:"omitempty,port"`
//	}
//	err := validation.Validate(cfg)
//
// Besides the built-in tags, "port" accepts a decimal string in 1..65535.
package validation
