package main

import (
	"fmt"
	"io"
	"text/tabwriter"
)

func PrintReceipt(w io.Writer, r *Receipt) error {
	if _, err := fmt.Fprintf(w, "receipt %s\npromotion: %s\n", r.ID, r.Promotion); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "fruit\tqty\tunit\tline\t")
	for _, it := range r.Items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t\n", it.Fruit, it.Qty, it.UnitPrice, it.LineTotal)
	}
	fmt.Fprintf(tw, "subtotal\t\t\t%s\t\n", r.Base)
	if d := r.Discount(); d.Cents != 0 {
		fmt.Fprintf(tw, "discount\t\t\t-%s\t\n", d)
	}
	fmt.Fprintf(tw, "total\t\t\t%s\t\n", r.Total)
	return tw.Flush()
}
