package xbrl

import "github.com/dgallion1/edgarparse/internal/xmltree"

// BuildUnits maps each top-level unit id to its measure. A divide unit
// becomes "numerator/denominator". Missing ids and measures degrade to
// empty strings rather than failing.
func BuildUnits(root *xmltree.Node) map[string]string {
	units := make(map[string]string)
	for _, unit := range root.ChildrenByTag("unit") {
		id, _ := unit.Attr("id")
		units[id] = unitMeasure(unit)
	}
	return units
}

func unitMeasure(unit *xmltree.Node) string {
	divide, ok := unit.Child("divide")
	if !ok {
		m, _ := unit.ChildText("measure")
		return m
	}
	var num, den string
	if n, ok := divide.Path("unitNumerator", "measure"); ok {
		num, _ = n.Text()
	}
	if d, ok := divide.Path("unitDenominator", "measure"); ok {
		den, _ = d.Text()
	}
	return num + "/" + den
}
