package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/deidaraiorek/launchboard/internal/query"
	"github.com/deidaraiorek/launchboard/internal/view"
)

func runList(cmd *cobra.Command, args []string) error {
	state, err := stateFromFlags()
	if err != nil {
		return err
	}

	_, s, closer, err := prepare(false)
	if err != nil {
		return err
	}
	defer closer.Close()

	f := query.NewFacade(s)
	f.SetLocation(state.Location)
	if err := f.SetOutcome(state.Outcome); err != nil {
		return err
	}
	f.SetSearch(state.Keyword)

	out := cmd.OutOrStdout()
	for _, c := range view.NewCards(f.Result(), s) {
		printCard(out, c)
	}
	fmt.Fprintln(out, f.Status())
	return nil
}

func runRegions(cmd *cobra.Command, args []string) error {
	_, s, closer, err := prepare(false)
	if err != nil {
		return err
	}
	defer closer.Close()

	for _, region := range s.Regions() {
		fmt.Fprintln(cmd.OutOrStdout(), region)
	}
	return nil
}

func printCard(w io.Writer, c view.Card) {
	fmt.Fprintf(w, "%s  (%s)  [%s]\n", c.MissionName, c.Date, c.Outcome)
	fmt.Fprintf(w, "  %s\n", c.FlightNumber)
	fmt.Fprintf(w, "  %s\n", c.Details)
	fmt.Fprintf(w, "  Rocket: %s, %s, %s, %s per launch, %s\n",
		c.Rocket.Name, c.Rocket.Mass, c.Rocket.Height, c.Rocket.CostPerLaunch, c.Rocket.Company)
	fmt.Fprintf(w, "  Launchpad: %s (%s, %s)\n", c.Launchpad.FullName, c.Launchpad.Region, c.Launchpad.Locality)
	fmt.Fprintln(w)
}
