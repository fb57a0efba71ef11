package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gordonklaus/persona"
)

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Print the synth state and engine targets as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := newSession(nil, seeded(seed))
		st := s.synth.State()
		out := struct {
			Controls persona.ControlState
			State    stateJSON
			Frame    persona.ParameterFrame
			Config   string
		}{s.synth.Controls(), stateJSON{
			Value:         st.Value,
			Weights:       st.Weights,
			Dominant:      st.Dominant.ID,
			DominantIndex: st.DominantIndex,
			RichnessNorm:  st.RichnessNorm,
			Fundamental:   st.Fundamental,
			WavetablePos:  st.WavetablePos,
		}, s.synth.Frame(), s.config()}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	},
}

type stateJSON struct {
	Value         float64
	Weights       []float64
	Dominant      string
	DominantIndex int
	RichnessNorm  float64
	Fundamental   float64
	WavetablePos  float64
}

var configCmd = &cobra.Command{
	Use:   "config [string]",
	Short: "Normalize a config string",
	Long: `Decode a config string, apply it to a fresh synth and print the
resulting config.  Unknown keys and bad values are dropped.

Examples:
  persona config 'p=0.7&foo=1&rn=c%233'
  persona config '#p=0.2&e=0.9'`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			configFlag = args[0]
		}
		s := newSession(nil, seeded(1))
		fmt.Println(s.config())
		return nil
	},
}
