package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kilianp07/designpatterns/app"
	"github.com/kilianp07/designpatterns/core/support"
)

var documentsCmd = &cobra.Command{
	Use:   "documents",
	Short: "Create the configured documents through the factory",
	Args:  cobra.NoArgs,
	RunE:  runDocuments,
}

var guiCmd = &cobra.Command{
	Use:   "gui",
	Short: "Render one widget of each kind for the configured family",
	Args:  cobra.NoArgs,
	RunE:  runGUI,
}

var supportCmd = &cobra.Command{
	Use:   "support [type] [query]",
	Short: "Send a request through the support chain",
	Long:  "Send a request through the support chain. Without arguments one sample request per type is sent.",
	Args:  cobra.RangeArgs(0, 2),
	RunE:  runSupport,
}

var singletonCmd = &cobra.Command{
	Use:   "singleton",
	Short: "Print the identity of every singleton discipline",
	Args:  cobra.NoArgs,
	RunE:  runSingleton,
}

func init() {
	rootCmd.AddCommand(documentsCmd, guiCmd, supportCmd, singletonCmd)
}

func runDocuments(cmd *cobra.Command, _ []string) error {
	svc, err := newService(cmd)
	if err != nil {
		return err
	}
	defer closeService(svc)
	docs, err := svc.Documents()
	if err != nil {
		return err
	}
	for _, d := range docs {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%T\t%s\n", d.Kind(), d, d.Name())
	}
	return nil
}

func runGUI(cmd *cobra.Command, _ []string) error {
	svc, err := newService(cmd)
	if err != nil {
		return err
	}
	defer closeService(svc)
	for _, w := range svc.RenderGUI() {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%T\n", w.Family(), w)
	}
	return nil
}

func runSupport(cmd *cobra.Command, args []string) error {
	svc, err := newService(cmd)
	if err != nil {
		return err
	}
	defer closeService(svc)

	reqs := app.SampleRequests()
	if len(args) > 0 {
		t, err := support.ParseRequestType(args[0])
		if err != nil {
			return err
		}
		query := ""
		if len(args) == 2 {
			query = args[1]
		}
		reqs = []support.Request{support.NewRequest(t, query)}
	}
	for _, r := range reqs {
		out := svc.Dispatch(r)
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\thandled=%t\n", r.Type, out.Handler, out.Handled)
	}
	return nil
}

func runSingleton(cmd *cobra.Command, _ []string) error {
	svc, err := newService(cmd)
	if err != nil {
		return err
	}
	defer closeService(svc)
	ids := svc.SingletonIDs()
	kinds := make([]string, 0, len(ids))
	for k := range ids {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	for _, k := range kinds {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", strings.ReplaceAll(k, "_", "-"), ids[k])
	}
	return nil
}
