package fleet

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/go-faster/jx"
)

// EncodeJSON renders reports as a JSON array.
func EncodeJSON(reports []CenterReport) []byte {
	var e jx.Encoder
	e.ArrStart()
	for i := range reports {
		encodeReport(&e, &reports[i])
	}
	e.ArrEnd()

	return e.Bytes()
}

// EncodeCoverageJSON renders a single coverage answer as a JSON object.
func EncodeCoverageJSON(c CityCoverage) []byte {
	var e jx.Encoder
	e.ObjStart()
	e.FieldStart("center")
	e.Str(c.Center)
	e.FieldStart("city")
	e.Str(c.City)
	e.FieldStart("province")
	e.Str(c.Province)
	e.FieldStart("covered")
	e.Bool(c.Covered)
	e.FieldStart("operators")
	encodeStrings(&e, c.Operators)
	e.ObjEnd()

	return e.Bytes()
}

func encodeReport(e *jx.Encoder, r *CenterReport) {
	e.ObjStart()
	e.FieldStart("center")
	e.Str(r.Center)
	e.FieldStart("homeCity")
	e.Str(r.HomeCity)
	e.FieldStart("homeCovered")
	e.Bool(r.HomeCovered)
	e.FieldStart("vendors")
	e.ArrStart()
	for i := range r.Vendors {
		encodeVendor(e, &r.Vendors[i])
	}
	e.ArrEnd()
	e.FieldStart("star")
	if r.Star == nil {
		e.Null()
	} else {
		encodeVendor(e, r.Star)
	}
	e.FieldStart("firm")
	encodeStrings(e, r.Firm)
	e.FieldStart("generic")
	encodeStrings(e, r.Generic)
	e.FieldStart("robust")
	e.Bool(r.Robust)
	e.ObjEnd()
}

func encodeVendor(e *jx.Encoder, v *VendorSummary) {
	e.ObjStart()
	e.FieldStart("name")
	e.Str(v.Name)
	e.FieldStart("kind")
	e.Str(string(v.Kind))
	e.FieldStart("score")
	e.Int(v.Score)
	e.FieldStart("versatile")
	e.Bool(v.Versatile)
	e.FieldStart("firm")
	e.Bool(v.Firm)
	e.FieldStart("generic")
	e.Bool(v.Generic)
	e.FieldStart("influential")
	e.Bool(v.Influential)
	e.ObjEnd()
}

func encodeStrings(e *jx.Encoder, values []string) {
	e.ArrStart()
	for _, v := range values {
		e.Str(v)
	}
	e.ArrEnd()
}

// WriteText renders reports as aligned human readable tables, one per center.
func WriteText(w io.Writer, reports []CenterReport) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for i, r := range reports {
		if i > 0 {
			fmt.Fprintln(tw)
		}
		fmt.Fprintf(tw, "center %s (%s)\n", r.Center, r.HomeCity)
		fmt.Fprintln(tw, "VENDOR\tKIND\tSCORE\tVERSATILE\tFIRM\tGENERIC\tINFLUENTIAL")
		for _, v := range r.Vendors {
			fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\t%s\t%s\n",
				v.Name, v.Kind, v.Score, yesNo(v.Versatile), yesNo(v.Firm), yesNo(v.Generic), yesNo(v.Influential))
		}
		star := "none"
		if r.Star != nil {
			star = fmt.Sprintf("%s (%d)", r.Star.Name, r.Star.Score)
		}
		fmt.Fprintf(tw, "star vendor:\t%s\n", star)
		fmt.Fprintf(tw, "home city covered:\t%s\n", yesNo(r.HomeCovered))
		fmt.Fprintf(tw, "generic vendors:\t%s\n", list(r.Generic))
		fmt.Fprintf(tw, "robust:\t%s\n", yesNo(r.Robust))
	}

	return tw.Flush()
}

// WriteCoverageText renders a coverage answer on a single line.
func WriteCoverageText(w io.Writer, c CityCoverage) error {
	verdict := "cannot cover"
	if c.Covered {
		verdict = "covers"
	}
	_, err := fmt.Fprintf(w, "center %s %s %s (%s): %s\n", c.Center, verdict, c.City, c.Province, list(c.Operators))

	return err
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}

	return "no"
}

func list(values []string) string {
	if len(values) == 0 {
		return "-"
	}

	return strings.Join(values, ", ")
}
