package profile

import (
	"fmt"
	"sort"
	"strings"
)

// ToLLMFormat renders the summary as a compact plain-text digest suitable
// for embedding in a prompt. One line per column in sorted column order,
// followed by any requested relationship sections.
func (s *Summary) ToLLMFormat() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Dataset: %d rows, %d columns\n", s.RowCount, len(s.Columns))

	for _, col := range s.Columns {
		cs := s.ColumnStats[col]
		fmt.Fprintf(&b, "- %s [%s, %d/%d present]", col, cs.describeKinds(), cs.Present, cs.Present+cs.Missing)

		switch {
		case cs.Numeric != nil:
			n := cs.Numeric
			fmt.Fprintf(&b, " mean=%.4g median=%.4g range=[%.4g, %.4g] sd=%.4g", n.Mean, n.Median, n.Min, n.Max, n.StdDev)
		case cs.Categorical != nil:
			c := cs.Categorical
			fmt.Fprintf(&b, " %d distinct", c.Unique)
			if len(c.Top) > 0 {
				fmt.Fprintf(&b, ", mode=%q (%d)", c.Top[0].Value, c.Top[0].Count)
			}
			fmt.Fprintf(&b, ", concentration=%.0f/10000", c.HHI)
		}
		b.WriteByte('\n')
	}

	if s.Keys != nil && len(s.Keys.CandidateKeys) > 0 {
		fmt.Fprintf(&b, "Candidate keys: %s\n", strings.Join(s.Keys.CandidateKeys, ", "))
	}
	if s.Keys != nil && len(s.Keys.FunctionalDependencies) > 0 {
		deps := make([]string, 0, len(s.Keys.FunctionalDependencies))
		for _, d := range s.Keys.FunctionalDependencies {
			deps = append(deps, d.Determinant+" -> "+d.Dependent)
		}
		fmt.Fprintf(&b, "Dependencies: %s\n", strings.Join(deps, "; "))
	}
	if s.Associations != nil {
		if line := s.describeStrongAssociations(); line != "" {
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}

	return b.String()
}

func (cs ColumnStats) describeKinds() string {
	if len(cs.Kinds) == 0 {
		return "empty"
	}
	if len(cs.Kinds) == 1 {
		return cs.Kinds[0]
	}
	return "mixed: " + strings.Join(cs.Kinds, "+")
}

// describeStrongAssociations lists pairs with |value| >= 0.5, strongest
// first, to keep prompt noise down.
func (s *Summary) describeStrongAssociations() string {
	type pair struct {
		a, b string
		v    float64
	}
	var strong []pair

	for i, a := range s.Columns {
		for _, b := range s.Columns[i+1:] {
			v, ok := s.Associations.Value(a, b)
			if ok && abs(v) >= 0.5 {
				strong = append(strong, pair{a, b, v})
			}
		}
	}
	if len(strong) == 0 {
		return ""
	}

	sort.SliceStable(strong, func(i, j int) bool {
		return abs(strong[i].v) > abs(strong[j].v)
	})

	parts := make([]string, 0, len(strong))
	for _, p := range strong {
		parts = append(parts, fmt.Sprintf("%s~%s (%.2f)", p.a, p.b, p.v))
	}
	return "Strong associations: " + strings.Join(parts, ", ")
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
