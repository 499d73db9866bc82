package domain

import (
	"fmt"
	"slices"
	"strings"
)

// Layout names the strategy a downstream consumer uses to interpret a merged document.
// It serializes as its lowercase name.
type Layout string

const (
	// LayoutRecursive is the recursive layout. It is the only variant today.
	LayoutRecursive Layout = "recursive"
)

// DefaultLayout is used when no layout is requested.
const DefaultLayout = LayoutRecursive

var knownLayouts = []Layout{LayoutRecursive}

// Layouts returns the known layout variants in declaration order.
func Layouts() []Layout {
	return slices.Clone(knownLayouts)
}

// ParseLayout resolves a layout name. Matching is exact, like the names printed by Layouts.
func ParseLayout(name string) (Layout, error) {
	for _, l := range knownLayouts {
		if string(l) == name {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: invalid layout %q (possible values: %s)", ErrUsage, name, layoutNames())
}

// String returns the serialized name of the layout.
func (l Layout) String() string {
	return string(l)
}

// Known reports whether l is one of the declared variants.
func (l Layout) Known() bool {
	return slices.Contains(knownLayouts, l)
}

func layoutNames() string {
	names := make([]string, len(knownLayouts))
	for i, l := range knownLayouts {
		names[i] = string(l)
	}
	return strings.Join(names, ", ")
}
