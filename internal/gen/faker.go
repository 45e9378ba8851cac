package gen

import (
	"fmt"
	"strings"
)

var firstNames = []string{
	"John", "Jane", "Alice", "Bob", "Charlie", "Diana", "Eve", "Frank",
	"Grace", "Henry", "Isabel", "Jack", "Karen", "Liam", "Mia", "Noah",
	"Olivia", "Peter", "Quinn", "Rosa", "Sam", "Tara", "Umar", "Vera",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
	"Davis", "Rodriguez", "Martinez", "Wilson", "Anderson", "Taylor",
	"Thomas", "Moore", "Jackson", "Lee", "Walker", "Hall", "Young",
}

var emailDomains = []string{"gmail.com", "yahoo.com", "outlook.com", "hotmail.com"}

var countries = []string{"USA", "UK", "Canada", "Australia", "Germany", "France", "Japan", "India"}

var countryWeights = []int{30, 12, 10, 8, 12, 10, 8, 10}

// Categories lists every product category the generator assigns.
var Categories = []string{
	"electronics", "home", "beauty", "books",
	"clothing", "sports", "toys", "automotive",
}

var categoryPrefixes = map[string][]string{
	"electronics": {"Smart", "Digital", "Wireless", "Pro"},
	"home":        {"Premium", "Classic", "Modern", "Elegant"},
	"beauty":      {"Luxury", "Natural", "Organic", "Professional"},
	"books":       {"The Complete", "Advanced", "Essential", "Illustrated"},
	"clothing":    {"Designer", "Classic", "Sport", "Casual"},
	"sports":      {"Professional", "Elite", "Training", "Competition"},
	"toys":        {"Fun", "Educational", "Interactive", "Creative"},
	"automotive":  {"Heavy Duty", "Premium", "Performance", "Classic"},
}

var reviewOpeners = []string{
	"Great quality,", "Exactly as described,", "Arrived quickly,",
	"Better than expected,", "Decent product,", "Not bad at all,",
	"Works perfectly,", "Solid purchase,", "A bit pricey, but",
}

var reviewClosers = []string{
	"would recommend.", "will buy again.", "very happy with it.",
	"does the job.", "my whole family loves it.", "five stars from me.",
	"no complaints so far.", "good value for the money.",
}

func personName(s *Stream) string {
	return firstNames[s.Index(len(firstNames))] + " " + lastNames[s.Index(len(lastNames))]
}

func emailFor(s *Stream, name string) string {
	local := strings.ToLower(strings.ReplaceAll(name, " ", "."))
	return fmt.Sprintf("%s%d@%s", local, s.IntBetween(1, 999), emailDomains[s.Index(len(emailDomains))])
}

func country(s *Stream) string {
	return countries[s.WeightedIndex(countryWeights)]
}

func productName(s *Stream, category string) string {
	prefixes := categoryPrefixes[category]
	return fmt.Sprintf("%s %s Item %d",
		prefixes[s.Index(len(prefixes))],
		strings.ToUpper(category[:1])+category[1:],
		s.IntBetween(1, 1000))
}

func skuFor(s *Stream, productID int64) string {
	suffixes := []string{"A", "B", "C"}
	return fmt.Sprintf("SKU-%05d-%s-%04d",
		s.IntBetween(10000, 99999),
		suffixes[s.Index(len(suffixes))],
		productID)
}

func reviewComment(s *Stream) string {
	return reviewOpeners[s.Index(len(reviewOpeners))] + " " + reviewClosers[s.Index(len(reviewClosers))]
}
