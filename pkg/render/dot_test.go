package render

import (
	"context"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/matzehuels/advent/pkg/ordering"
)

func sampleRules() *ordering.RuleSet[int] {
	return ordering.NewRuleSet(
		ordering.Rule[int]{Before: 4, After: 3},
		ordering.Rule[int]{Before: 2, After: 3},
		ordering.Rule[int]{Before: 1, After: 3},
		ordering.Rule[int]{Before: 1, After: 2},
	)
}

func TestToDOTGolden(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"rules_plain", Options{}},
		{"rules_detailed", Options{Detailed: true}},
	}
	g := goldie.New(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dot, err := ToDOT(sampleRules(), tt.opts)
			if err != nil {
				t.Fatalf("ToDOT() error: %v", err)
			}
			g.Assert(t, tt.name, []byte(dot))
		})
	}
}

func TestToDOTDeterministic(t *testing.T) {
	first, _ := ToDOT(sampleRules(), Options{})
	for range 5 {
		if again, _ := ToDOT(sampleRules(), Options{}); again != first {
			t.Fatal("ToDOT output changed between runs")
		}
	}
}

func TestToDOTEmpty(t *testing.T) {
	dot, err := ToDOT(ordering.NewRuleSet[int](), Options{})
	if err != nil {
		t.Fatalf("ToDOT() error: %v", err)
	}
	if !strings.HasPrefix(dot, "digraph rules {") || strings.Contains(dot, "->") {
		t.Errorf("unexpected DOT for empty rules:\n%s", dot)
	}
}

func TestToDOTCycleUnranked(t *testing.T) {
	rules := ordering.NewRuleSet(
		ordering.Rule[int]{Before: 1, After: 2},
		ordering.Rule[int]{Before: 2, After: 3},
		ordering.Rule[int]{Before: 3, After: 1},
	)
	dot, err := ToDOT(rules, Options{Detailed: true})
	if err != nil {
		t.Fatalf("ToDOT() error: %v", err)
	}
	if strings.Contains(dot, "rank=same") || strings.Contains(dot, "layer:") {
		t.Errorf("cyclic rules should render unranked:\n%s", dot)
	}
	for _, want := range []string{`"1" -> "2";`, `"2" -> "3";`, `"3" -> "1";`, `"1" [label="1\nbefore: 1"];`} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() missing %s:\n%s", want, dot)
		}
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="62pt" height="116pt" viewBox="0.00 0.00 62.00 116.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	got := string(normalizeViewBox(in))
	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 62.00 116.00" width="62" height="116"><g/></svg>`
	if got != want {
		t.Errorf("normalizeViewBox() = %s, want %s", got, want)
	}

	plain := []byte("<svg><g/></svg>")
	if got := normalizeViewBox(plain); string(got) != string(plain) {
		t.Errorf("normalizeViewBox() without viewBox changed input: %s", got)
	}
}

func TestRenderSVG(t *testing.T) {
	if testing.Short() {
		t.Skip("graphviz render is slow")
	}
	dot, err := ToDOT(sampleRules(), Options{})
	if err != nil {
		t.Fatal(err)
	}
	svg, err := RenderSVG(context.Background(), dot)
	if err != nil {
		t.Fatalf("RenderSVG() error: %v", err)
	}
	if !strings.Contains(string(svg), `viewBox="0 0 `) {
		t.Errorf("RenderSVG() output missing normalized viewBox")
	}
}
