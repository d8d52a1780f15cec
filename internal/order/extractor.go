package order

import (
	"regexp"
	"strings"
)

// Mode describes how a rule writes into the order.
type Mode int

const (
	// ModeScalar sets a field once; later matches never overwrite it.
	ModeScalar Mode = iota
	// ModeAccumulate appends every new match to a growing set.
	ModeAccumulate
)

// vocabEntry maps a keyword matched in the utterance to the canonical menu
// label stored on the order.
type vocabEntry struct {
	keyword string
	label   string
}

// Menu vocabularies. Scan order is declaration order; for scalar fields the
// first contained keyword wins.
var (
	pizzaVocab = []vocabEntry{
		{"margherita", "Margherita"},
		{"pepperoni", "Pepperoni"},
		{"veggie", "Veggie"},
		{"hawaiian", "Hawaiian"},
		{"bbq chicken", "BBQ Chicken"},
	}

	toppingVocab = []vocabEntry{
		{"extra cheese", "Extra Cheese"},
		{"olives", "Olives"},
		{"mushrooms", "Mushrooms"},
		{"onions", "Onions"},
		{"jalapeños", "Jalapeños"},
	}

	extraVocab = []vocabEntry{
		{"garlic bread", "Garlic Bread"},
		{"soda", "Soda"},
		{"dip", "Dip"},
		{"salad", "Salad"},
	}
)

// Loose address shape: digits eventually followed by a street-type word.
var addressPattern = regexp.MustCompile(`\d+.*(street|avenue|road|blvd)`)

// rule binds a detection pattern to one order field. Rules are evaluated in
// declaration order against a lower-cased copy of the latest user utterance.
type rule struct {
	field string
	mode  Mode
	apply func(o *PartialOrder, lowered string)
}

// rules is the full extraction table. Keeping it as data rather than a chain
// of conditionals lets each field's vocabulary live in one place.
var rules = []rule{
	{
		field: "pizza",
		mode:  ModeScalar,
		apply: func(o *PartialOrder, lowered string) {
			if o.Pizza != "" {
				return
			}
			for _, entry := range pizzaVocab {
				if strings.Contains(lowered, entry.keyword) {
					o.Pizza = entry.label
					return
				}
			}
		},
	},
	{
		field: "toppings",
		mode:  ModeAccumulate,
		apply: func(o *PartialOrder, lowered string) {
			for _, entry := range toppingVocab {
				if strings.Contains(lowered, entry.keyword) && !o.HasTopping(entry.label) {
					o.Toppings = append(o.Toppings, entry.label)
				}
			}
		},
	},
	{
		field: "extras",
		mode:  ModeAccumulate,
		apply: func(o *PartialOrder, lowered string) {
			for _, entry := range extraVocab {
				if strings.Contains(lowered, entry.keyword) && !o.HasExtra(entry.label) {
					o.Extras = append(o.Extras, entry.label)
				}
			}
		},
	},
	{
		field: "delivery_address",
		mode:  ModeScalar,
		apply: func(o *PartialOrder, lowered string) {
			if o.DeliveryAddress != "" {
				return
			}
			if strings.Contains(lowered, "street") || strings.Contains(lowered, "address") ||
				addressPattern.MatchString(lowered) {
				o.DeliveryAddress = lowered
			}
		},
	},
	{
		field: "allergies",
		mode:  ModeScalar,
		apply: func(o *PartialOrder, lowered string) {
			if o.Allergies != "" {
				return
			}
			switch {
			case strings.Contains(lowered, "none"):
				o.Allergies = "none"
			case strings.Contains(lowered, "allerg"):
				o.Allergies = lowered
			}
		},
	},
	{
		field: "dietary_preferences",
		mode:  ModeScalar,
		apply: func(o *PartialOrder, lowered string) {
			if o.DietaryPreference != "" {
				return
			}
			// Vegan is tested first; a scalar field is set once, so an
			// utterance naming both preferences records vegan.
			switch {
			case strings.Contains(lowered, "vegan"):
				o.DietaryPreference = "vegan"
			case strings.Contains(lowered, "halal"):
				o.DietaryPreference = "halal"
			}
		},
	},
	{
		field: "customizations",
		mode:  ModeScalar,
		apply: func(o *PartialOrder, lowered string) {
			if o.Customizations != "" {
				return
			}
			for _, keyword := range []string{"spicy", "custom", "special"} {
				if strings.Contains(lowered, keyword) {
					o.Customizations = lowered
					return
				}
			}
		},
	},
}

// Extract scans the latest user utterance for recognizable order fields and
// merges newly found values into a copy of prior. It is pure: prior is never
// mutated, fields already set are never overwritten, and the toppings and
// extras sets only grow. Matching is case-insensitive; free-text captures
// (address, allergies, customizations) store the lower-cased utterance.
func Extract(prior PartialOrder, utterance string) PartialOrder {
	updated := prior.Clone()
	lowered := strings.ToLower(utterance)
	for _, rule := range rules {
		rule.apply(&updated, lowered)
	}
	return updated
}
