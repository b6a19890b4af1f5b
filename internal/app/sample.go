package app

import "github.com/pouriyajamshidi/pizzaconfig/model"

type sampleOption struct {
	name  string
	price float64
}

type sampleSet struct {
	name    string
	options []sampleOption
}

var sampleSets = []sampleSet{
	{
		name: "Size",
		options: []sampleOption{
			{"Small", 0.0},
			{"Medium", 1.0},
			{"Large", 2.0},
		},
	},
	{
		name: "Crust",
		options: []sampleOption{
			{"Thin", 0.0},
			{"Stuffed", 1.5},
		},
	},
	{
		name: "Toppings",
		options: []sampleOption{
			{"Cheese", 1.5},
			{"Mushrooms", 0.75},
			{"Olives", 0.5},
		},
	},
}

// SampleConfig builds the configuration printed by the CLI.
// Every set is sized to exactly fit its options.
func SampleConfig(name string, basePrice float64) *model.PizzaConfig {
	cfg := model.NewPizzaConfig(name, len(sampleSets))
	cfg.SetBasePrice(basePrice)

	for _, s := range sampleSets {
		set := model.NewOptionSet(s.name, len(s.options))
		for _, o := range s.options {
			set.AddOption(model.NewOption(o.name, o.price))
		}
		cfg.AddOptionSet(set)
	}

	return cfg
}
