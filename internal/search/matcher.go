// Package search translates free-text dashboard questions into
// parameterized SQL queries by matching a fixed set of sentence patterns.
package search

import (
	"regexp"
	"strings"
)

// Query a matched question: the SQL template and its bound parameters.
type Query struct {
	Name string // rule name, for logging
	SQL  string
	Args []any
}

// transform how a rule's capture group becomes a bound parameter.
type transform int

const (
	transformNone transform = iota
	transformUpper            // blood groups: "a+" -> "A+"
	transformSubstring        // donor names: "asha" -> "%asha%"
)

// rule one recognized sentence pattern. Patterns are anchored at the end of
// the normalized input and carry at most one capture group.
type rule struct {
	name      string
	re        *regexp.Regexp
	sql       string
	transform transform
}

// rules evaluated in declaration order; the first match wins. The order is
// part of the contract: more specific patterns sit above the catch-all
// "contact of" substring rule.
var rules = []rule{
	{
		name: "available_blood",
		re:   regexp.MustCompile(`available blood$`),
		sql: `SELECT blood_grp, SUM(quantity) AS total_units
		      FROM storage_house GROUP BY blood_grp`,
	},
	{
		name:      "donors_with_group",
		re:        regexp.MustCompile(`donors with ([a-z0-9+-]+)$`),
		sql:       `SELECT dona_id, dona_name, blood_grp, dona_contact FROM donors WHERE blood_grp = $1`,
		transform: transformUpper,
	},
	{
		name:      "contact_of_donor",
		re:        regexp.MustCompile(`contact of (.+)$`),
		sql:       `SELECT dona_name, dona_contact FROM donors WHERE dona_name ILIKE $1`,
		transform: transformSubstring,
	},
	{
		name: "who_donated",
		re:   regexp.MustCompile(`who donated blood$`),
		sql:  `SELECT dona_name, blood_grp FROM donors`,
	},
	{
		name: "bank_location",
		re:   regexp.MustCompile(`location of blood bank$`),
		sql:  `SELECT emp_name, bb_address FROM employees`,
	},
	{
		name: "hospital_orders",
		re:   regexp.MustCompile(`hospital orders$`),
		sql: `SELECT o.order_id, h.hosp_name, o.blood_grp, o.quantity, o.status
		      FROM orders o JOIN hospitals h ON o.hosp_id = h.hosp_id`,
	},
	{
		name: "blood_supply",
		re:   regexp.MustCompile(`blood supply$`),
		sql: `SELECT s.supply_id, h.hosp_name, s.blood_grp, s.quantity
		      FROM supply s JOIN hospitals h ON s.hosp_id = h.hosp_id`,
	},
}

var stripChars = regexp.MustCompile(`[;'"]`)

// Normalize trims, lowercases and strips `;`, `'`, `"` before matching.
func Normalize(input string) string {
	return stripChars.ReplaceAllString(strings.ToLower(strings.TrimSpace(input)), "")
}

// Match normalizes the question and tries each rule in order. The second
// return is false when no pattern matches (including empty input).
func Match(input string) (Query, bool) {
	text := Normalize(input)
	if text == "" {
		return Query{}, false
	}

	for _, r := range rules {
		m := r.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		q := Query{Name: r.name, SQL: r.sql}
		if len(m) > 1 {
			param := m[1]
			switch r.transform {
			case transformUpper:
				param = strings.ToUpper(param)
			case transformSubstring:
				param = "%" + param + "%"
			}
			q.Args = []any{param}
		}
		return q, true
	}
	return Query{}, false
}
