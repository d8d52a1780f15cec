package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractPizzaAndToppings(t *testing.T) {
	updated := Extract(PartialOrder{}, "I'd like a pepperoni pizza with extra cheese and olives")

	assert.Equal(t, "Pepperoni", updated.Pizza)
	assert.Equal(t, []string{"Extra Cheese", "Olives"}, updated.Toppings)
	assert.Empty(t, updated.Extras)
}

func TestExtractFirstPizzaWins(t *testing.T) {
	// Scan order is vocabulary declaration order, not utterance order.
	updated := Extract(PartialOrder{}, "hawaiian or margherita, surprise me")
	assert.Equal(t, "Margherita", updated.Pizza)
}

func TestExtractDoesNotOverwritePizza(t *testing.T) {
	prior := PartialOrder{Pizza: "Veggie"}
	updated := Extract(prior, "actually make it a pepperoni")
	assert.Equal(t, "Veggie", updated.Pizza)
}

func TestExtractScalarIdempotence(t *testing.T) {
	utterances := []string{
		"pepperoni with jalapeños please",
		"vegan, no onions",
		"123 Main Street",
	}
	for _, utterance := range utterances {
		once := Extract(PartialOrder{}, utterance)
		twice := Extract(once, utterance)
		assert.Equal(t, once, twice, "second pass over %q changed the order", utterance)
	}
}

func TestExtractToppingsAccumulateWithoutDuplicates(t *testing.T) {
	o := Extract(PartialOrder{}, "olives and mushrooms")
	o = Extract(o, "more olives and some onions too")

	assert.Equal(t, []string{"Olives", "Mushrooms", "Onions"}, o.Toppings)
}

func TestExtractExtrasAccumulate(t *testing.T) {
	o := Extract(PartialOrder{}, "garlic bread and a soda")
	o = Extract(o, "add a salad")

	assert.Equal(t, []string{"Garlic Bread", "Soda", "Salad"}, o.Extras)
}

func TestExtractAddressVerbatimLowercase(t *testing.T) {
	updated := Extract(PartialOrder{}, "123 Main Street please")
	assert.Equal(t, "123 main street please", updated.DeliveryAddress)
}

func TestExtractAddressKeywordOnly(t *testing.T) {
	updated := Extract(PartialOrder{}, "my address is flat 2, riverside")
	assert.Equal(t, "my address is flat 2, riverside", updated.DeliveryAddress)
}

func TestExtractAddressPattern(t *testing.T) {
	updated := Extract(PartialOrder{}, "deliver to 45 Oak Avenue")
	assert.Equal(t, "deliver to 45 oak avenue", updated.DeliveryAddress)

	updated = Extract(PartialOrder{}, "just ring the bell when you arrive")
	assert.Empty(t, updated.DeliveryAddress)
}

func TestExtractAllergies(t *testing.T) {
	updated := Extract(PartialOrder{}, "I'm allergic to nuts")
	assert.Equal(t, "i'm allergic to nuts", updated.Allergies)

	updated = Extract(PartialOrder{}, "none for me")
	assert.Equal(t, "none", updated.Allergies)
}

func TestExtractDietaryFirstWriteWins(t *testing.T) {
	o := Extract(PartialOrder{}, "vegan please")
	o = Extract(o, "actually halal")

	assert.Equal(t, "vegan", o.DietaryPreference)
}

func TestExtractDietaryVeganBeatsHalalSameUtterance(t *testing.T) {
	updated := Extract(PartialOrder{}, "either halal or vegan works")
	assert.Equal(t, "vegan", updated.DietaryPreference)
}

func TestExtractCustomizations(t *testing.T) {
	updated := Extract(PartialOrder{}, "make it extra Spicy")
	assert.Equal(t, "make it extra spicy", updated.Customizations)
}

func TestExtractNoMatchLeavesOrderUnchanged(t *testing.T) {
	prior := PartialOrder{Pizza: "Hawaiian", Toppings: []string{"Onions"}}
	updated := Extract(prior, "sounds good, thanks!")
	assert.Equal(t, prior, updated)
}

func TestExtractDoesNotMutatePrior(t *testing.T) {
	prior := PartialOrder{Toppings: []string{"Olives"}}
	_ = Extract(prior, "add mushrooms and onions")

	assert.Equal(t, []string{"Olives"}, prior.Toppings)
}
