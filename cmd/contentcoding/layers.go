package main

import (
	"fmt"
	"io"

	json "github.com/json-iterator/go"

	"github.com/indigo-web/contentcoding"
)

type layerView struct {
	Token    string `json:"token"`
	Standard bool   `json:"standard"`
}

func printLayers(out io.Writer, value string, asJSON bool) error {
	views := make([]layerView, 0, contentcoding.Count(value))
	for layer := range contentcoding.Parse(value) {
		views = append(views, layerView{
			Token:    layer.String(),
			Standard: layer.IsStd(),
		})
	}

	if asJSON {
		return json.NewEncoder(out).Encode(views)
	}

	for _, view := range views {
		kind := "other"
		if view.Standard {
			kind = "std"
		}

		if _, err := fmt.Fprintf(out, "%s\t%s\n", kind, view.Token); err != nil {
			return err
		}
	}

	return nil
}
