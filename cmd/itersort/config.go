package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/go-playground/validator"
	"github.com/spf13/viper"
)

type Config struct {
	// the seed for the random sample data, same seed reproduces the same run
	Seed uint64 `validate:"required" yaml:"Seed"`
	// how many random ints to generate for the sort showcase
	SortSize int `validate:"required,min=1" yaml:"SortSize"`
	// the arithmetic sequence for the range showcase: [RangeStart, RangeEnd)
	RangeStart int `yaml:"RangeStart"`
	RangeEnd   int `yaml:"RangeEnd"`
	// nonzero, a zero step makes an inert range iterator
	RangeStep int `validate:"required" yaml:"RangeStep"`
}

var DefaultCfg = Config{
	Seed:       42,
	SortSize:   20,
	RangeStart: 0,
	RangeEnd:   10,
	RangeStep:  2,
}

func LoadConfig(loadFile bool) (cfg Config) {
	var err error

	cfg = DefaultCfg

	// Load config
	viper.AddConfigPath(".")
	viper.SetConfigName("itersort")
	if loadFile == true {
		err = viper.ReadInConfig()
		if err == nil {
			err = viper.Unmarshal(&cfg)
			if err != nil {
				log.Fatalf("unable to decode into config struct, %s", err)
			}
		} else {
			// Check config read errors
			if _, ok := err.(viper.ConfigFileNotFoundError); ok {
				log.Printf("no config file loaded")
			} else {
				log.Fatalf("unable to use config file: %s", err)
			}
		}
	}

	return
}

func (cfg Config) Validate() error {
	translateError := func(e validator.FieldError) string {
		switch e.ActualTag() {
		case "required":
			return "value is empty"
		case "min":
			return fmt.Sprintf("value is below %s", e.Param())
		default:
			return fmt.Sprintf("invalid value (%s)", e.Tag())
		}
	}

	cfgValidate := validator.New()
	err := cfgValidate.Struct(cfg)
	if err != nil {
		message := "Invalid config values:\n"
		for _, e := range err.(validator.ValidationErrors) {
			message += fmt.Sprintf("> %v: %s\n", e.StructField(), translateError(e))
		}
		return errors.New(message)
	}

	return nil
}
