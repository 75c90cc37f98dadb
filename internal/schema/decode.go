package schema

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/dgallion1/edgarparse/internal/edgarerr"
	"github.com/dgallion1/edgarparse/internal/value"
	"github.com/dgallion1/edgarparse/internal/xmltree"
)

// Decoder fills records from an element tree in one recursive pass.
type Decoder struct {
	Policy Policy
	// Footnotes is the set of footnote ids declared by the document. When
	// non-nil, references to ids outside the set are dropped.
	Footnotes map[string]bool
}

// DecodeRoot checks the root element name (Strict only) and decodes it into
// out, which must be a pointer to a record.
func (d *Decoder) DecodeRoot(root *xmltree.Node, rootTag string, out any) error {
	if d.Policy == Strict && root.Local() != rootTag {
		return &edgarerr.MissingElementError{Tag: rootTag}
	}
	return d.Decode(root, out)
}

// Decode fills the record out points to from node.
func (d *Decoder) Decode(node *xmltree.Node, out any) error {
	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("schema: Decode needs a non-nil pointer to a struct, got %T", out)
	}
	return d.decodeRecord(node, rv.Elem())
}

func (d *Decoder) decodeRecord(node *xmltree.Node, rv reflect.Value) error {
	for _, f := range planFor(rv.Type()) {
		if err := d.decodeField(node, f, rv.Field(f.index)); err != nil {
			return err
		}
	}
	return nil
}

func (d *Decoder) required(f field) bool {
	return f.required && d.Policy == Strict
}

func (d *Decoder) missing(node *xmltree.Node, f field) error {
	tag := f.tag
	if f.source == fromAttr {
		tag = "@" + tag
	}
	if f.source == fromText {
		tag = node.Local()
	}
	return &edgarerr.MissingElementError{Tag: tag, Path: node.PathString()}
}

func (d *Decoder) decodeField(node *xmltree.Node, f field, out reflect.Value) error {
	switch f.kind {
	case kindValueFootnote:
		child, ok := node.Child(f.tag)
		if !ok {
			return d.absent(node, f)
		}
		out.Set(reflect.ValueOf(d.valueFootnote(child)))
		return nil

	case kindRecord:
		child, ok := node.Child(f.tag)
		if !ok {
			return d.absent(node, f)
		}
		rec := reflect.New(f.elem)
		if err := d.decodeRecord(child, rec.Elem()); err != nil {
			return err
		}
		out.Set(rec)
		return nil

	case kindRecords:
		items := d.collect(node, f)
		slice := reflect.MakeSlice(out.Type(), 0, len(items))
		for _, item := range items {
			rec := reflect.New(f.elem).Elem()
			if err := d.decodeRecord(item, rec); err != nil {
				return err
			}
			slice = reflect.Append(slice, rec)
		}
		out.Set(slice)
		return nil

	case kindIntList:
		out.Set(reflect.ValueOf(intList(node.ChildrenByTag(f.tag))))
		return nil
	}

	raw, ok := d.leafText(node, f)
	if !ok {
		return d.absent(node, f)
	}
	switch f.kind {
	case kindString:
		out.Set(reflect.ValueOf(&raw))
	case kindValue:
		v := value.Coerce(raw)
		out.Set(reflect.ValueOf(&v))
	case kindBool:
		b, ok := ParseFlag(raw)
		if !ok {
			return d.badLeaf(node, f, raw, "bool")
		}
		out.Set(reflect.ValueOf(&b))
	case kindInt:
		i, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return d.badLeaf(node, f, raw, "int")
		}
		out.Set(reflect.ValueOf(&i))
	case kindFloat:
		fl, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return d.badLeaf(node, f, raw, "float")
		}
		out.Set(reflect.ValueOf(&fl))
	}
	return nil
}

func (d *Decoder) absent(node *xmltree.Node, f field) error {
	if d.required(f) {
		return d.missing(node, f)
	}
	return nil
}

func (d *Decoder) badLeaf(node *xmltree.Node, f field, raw, want string) error {
	if d.required(f) {
		return &edgarerr.CoercionError{Tag: f.tag, Path: node.PathString(), Raw: raw, Want: want}
	}
	return nil
}

func (d *Decoder) leafText(node *xmltree.Node, f field) (string, bool) {
	switch f.source {
	case fromAttr:
		return node.Attr(f.tag)
	case fromText:
		return node.Text()
	case fromFootnoteRef:
		for _, ref := range node.ChildrenByTag(f.tag) {
			if id, ok := ref.Attr("id"); ok && d.resolves(id) {
				return id, true
			}
		}
		return "", false
	}
	return node.ChildText(f.tag)
}

func (d *Decoder) collect(node *xmltree.Node, f field) []*xmltree.Node {
	if f.container == "" {
		return node.ChildrenByTag(f.tag)
	}
	var items []*xmltree.Node
	for _, c := range node.ChildrenByTag(f.container) {
		items = append(items, c.ChildrenByTag(f.tag)...)
	}
	return items
}

func (d *Decoder) resolves(id string) bool {
	return d.Footnotes == nil || d.Footnotes[id]
}

// valueFootnote decodes <tag><value>..</value><footnoteId id=".."/></tag>.
func (d *Decoder) valueFootnote(node *xmltree.Node) *ValueFootnote {
	vf := &ValueFootnote{}
	if raw, ok := node.ChildText("value"); ok {
		v := value.Coerce(raw)
		vf.Value = &v
	}
	for _, ref := range node.ChildrenByTag("footnoteId") {
		id, ok := ref.Attr("id")
		if !ok || !d.resolves(id) {
			continue
		}
		vf.FootnoteIDs = append(vf.FootnoteIDs, id)
	}
	if len(vf.FootnoteIDs) > 0 {
		first := vf.FootnoteIDs[0]
		vf.FootnoteID = &first
	}
	return vf
}

// ParseFlag decodes EDGAR boolean flags: 1/0, true/false and Y/N in any
// case, surrounding whitespace ignored.
func ParseFlag(raw string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "y":
		return true, true
	case "0", "false", "n":
		return false, true
	}
	return false, false
}

// intList gathers comma-separated integers from every node; tokens that
// do not parse are skipped.
func intList(nodes []*xmltree.Node) []int64 {
	out := []int64{}
	for _, n := range nodes {
		text, ok := n.Text()
		if !ok {
			continue
		}
		for _, tok := range strings.Split(text, ",") {
			if i, err := strconv.ParseInt(strings.TrimSpace(tok), 10, 64); err == nil {
				out = append(out, i)
			}
		}
	}
	return out
}
