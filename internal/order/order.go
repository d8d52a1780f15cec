package order

// PartialOrder is the accumulating record of a single customer's order.
// Scalar fields are write-once: later extraction passes never overwrite a
// value already set. Toppings and Extras only grow and never hold duplicates.
type PartialOrder struct {
	Pizza             string   `json:"pizza,omitempty"`
	Toppings          []string `json:"toppings,omitempty"`
	Extras            []string `json:"extras,omitempty"`
	DeliveryAddress   string   `json:"delivery_address,omitempty"`
	Allergies         string   `json:"allergies,omitempty"`
	DietaryPreference string   `json:"dietary_preferences,omitempty"`
	Customizations    string   `json:"customizations,omitempty"`
}

// HasPizza reports whether a pizza has been chosen.
func (o *PartialOrder) HasPizza() bool {
	return o.Pizza != ""
}

// HasAddress reports whether a delivery address has been collected.
func (o *PartialOrder) HasAddress() bool {
	return o.DeliveryAddress != ""
}

// HasAllergies reports whether the allergy question has been answered.
// "none" counts as an answer.
func (o *PartialOrder) HasAllergies() bool {
	return o.Allergies != ""
}

// HasTopping reports whether the named topping is already on the order.
func (o *PartialOrder) HasTopping(name string) bool {
	return contains(o.Toppings, name)
}

// HasExtra reports whether the named extra is already on the order.
func (o *PartialOrder) HasExtra(name string) bool {
	return contains(o.Extras, name)
}

// Clone returns a deep copy so callers can mutate the result without
// touching the original.
func (o PartialOrder) Clone() PartialOrder {
	dup := o
	dup.Toppings = append([]string(nil), o.Toppings...)
	dup.Extras = append([]string(nil), o.Extras...)
	return dup
}

func contains(items []string, name string) bool {
	for _, item := range items {
		if item == name {
			return true
		}
	}
	return false
}
