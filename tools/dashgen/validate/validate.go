// Package validate checks generated dashboards and rules for PromQL syntax
// errors and references to metrics the service does not export.
package validate

import (
	"fmt"

	"github.com/grafana/grafana-foundation-sdk/go/dashboard"
	"github.com/grafana/grafana-foundation-sdk/go/prometheus"
	"github.com/prometheus/prometheus/promql/parser"

	"github.com/donaldgifford/discogs-alert/tools/dashgen/rules"
)

// Result collects validation findings. Errors are fatal; warnings flag
// panels that could not be inspected.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether no errors were found.
func (r *Result) Ok() bool {
	return len(r.Errors) == 0
}

// Expr parses expr and checks every selected metric against known.
func Expr(expr string, known map[string]bool) error {
	node, err := parser.ParseExpr(expr)
	if err != nil {
		return fmt.Errorf("parsing %q: %w", expr, err)
	}

	var unknown []string
	parser.Inspect(node, func(n parser.Node, _ []parser.Node) error {
		if vs, ok := n.(*parser.VectorSelector); ok && vs.Name != "" && !known[vs.Name] {
			unknown = append(unknown, vs.Name)
		}
		return nil
	})
	if len(unknown) > 0 {
		return fmt.Errorf("unknown metrics in %q: %v", expr, unknown)
	}
	return nil
}

// Dashboard validates every Prometheus target in the dashboard.
func Dashboard(dash dashboard.Dashboard, known map[string]bool) Result {
	var res Result

	check := func(p *dashboard.Panel) {
		title := ""
		if p.Title != nil {
			title = *p.Title
		}
		for _, target := range p.Targets {
			q, ok := target.(*prometheus.Dataquery)
			if !ok {
				res.Warnings = append(res.Warnings, fmt.Sprintf("panel %q: non-Prometheus target", title))
				continue
			}
			if err := Expr(q.Expr, known); err != nil {
				res.Errors = append(res.Errors, fmt.Sprintf("panel %q: %v", title, err))
			}
		}
	}

	for _, p := range dash.Panels {
		if p.Panel != nil {
			check(p.Panel)
		}
		if p.RowPanel != nil {
			for i := range p.RowPanel.Panels {
				check(&p.RowPanel.Panels[i])
			}
		}
	}

	return res
}

// Rules validates every expression in a PrometheusRule CR.
func Rules(cr rules.PrometheusRule, known map[string]bool) Result {
	var res Result
	for _, g := range cr.Spec.Groups {
		for _, r := range g.Rules {
			name := r.Record
			if name == "" {
				name = r.Alert
			}
			if err := Expr(r.Expr, known); err != nil {
				res.Errors = append(res.Errors, fmt.Sprintf("rule %q: %v", name, err))
			}
		}
	}
	return res
}
