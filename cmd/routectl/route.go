package main

import (
	"fmt"
	"strings"

	"github.com/aie-routing/routectl/routing"
	"github.com/spf13/cobra"
)

var (
	routeEnvPath   string
	routeBlacklist string
	routeWhitelist string
)

var routeCmd = &cobra.Command{
	Use:   "route <src> <dst>",
	Short: "Discover and commit a route between two tiles (\"col,row\" each).",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := parseTile(args[0])
		if err != nil {
			return err
		}
		dst, err := parseTile(args[1])
		if err != nil {
			return err
		}

		rc, err := parseConstraints(routeBlacklist, routeWhitelist)
		if err != nil {
			return err
		}

		rec, err := newInstance(routeEnvPath)
		if err != nil {
			return err
		}

		if err := rec.Route(cmd.Context(), src, dst, rc); err != nil {
			return err
		}

		fmt.Printf("routed %s -> %s\n", src, dst)
		return nil
	},
}

func init() {
	routeCmd.Flags().StringVar(&routeEnvPath, "env", "", "path to a .env file overriding the default geometry")
	routeCmd.Flags().StringVar(&routeBlacklist, "blacklist", "", "semicolon-separated list of tiles to avoid, e.g. 1,2;3,4")
	routeCmd.Flags().StringVar(&routeWhitelist, "whitelist", "", "semicolon-separated list of tiles the path must stay within")
	rootCmd.AddCommand(routeCmd)
}

// parseConstraints builds a routing.RouteConstraints from semicolon-
// separated "col,row" lists. An empty blacklist/whitelist string yields
// a nil map field, matching RouteConstraints' nil-safe accessors.
func parseConstraints(blacklist, whitelist string) (*routing.RouteConstraints, error) {
	if blacklist == "" && whitelist == "" {
		return nil, nil
	}

	rc := &routing.RouteConstraints{}

	if blacklist != "" {
		m, err := parseTileSet(blacklist)
		if err != nil {
			return nil, err
		}
		rc.Blacklist = m
	}
	if whitelist != "" {
		m, err := parseTileSet(whitelist)
		if err != nil {
			return nil, err
		}
		rc.Whitelist = m
	}

	return rc, nil
}

func parseTileSet(s string) (map[routing.TileLoc]bool, error) {
	out := map[routing.TileLoc]bool{}
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		loc, err := parseTile(part)
		if err != nil {
			return nil, err
		}
		out[loc] = true
	}
	return out, nil
}
