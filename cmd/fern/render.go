package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fern-ui/fern/internal/demo"
	"github.com/fern-ui/fern/pkg/render"
	"github.com/fern-ui/fern/pkg/vdom"
)

func renderCmd() *cobra.Command {
	var (
		pretty bool
		page   bool
		title  string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the demo tree as HTML to stdout",
		Long: `Mount the demo application in an in-memory document and print
the serialized HTML. With --page, wrap it in a full document.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			config := render.Config{Pretty: pretty}

			if page {
				out, err := render.PageToString(render.Page{
					Title: title,
					Body:  vdom.Component(demo.App, nil),
				}, config)
				if err != nil {
					return err
				}
				fmt.Print(out)
				return nil
			}

			out, err := render.MountToString(vdom.Component(demo.App, nil), config)
			if err != nil {
				return err
			}
			fmt.Println(out)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "Indent the output")
	cmd.Flags().BoolVar(&page, "page", false, "Emit a full HTML document")
	cmd.Flags().StringVarP(&title, "title", "t", "fern demo", "Document title with --page")

	return cmd
}
