package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aie-routing/routectl/config"
	"github.com/aie-routing/routectl/routing"
	"github.com/spf13/cobra"
)

var (
	hostedgeEnvPath  string
	hostedgeHost2AIE string
	hostedgeAIE2Host string
	hostedgeResetArg bool
)

var hostedgeCmd = &cobra.Command{
	Use:   "hostedge <tile>",
	Short: "Replace or reset a shim tile's host-edge port/channel mapping.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		loc, err := parseTile(args[0])
		if err != nil {
			return err
		}

		rec, err := newInstance(hostedgeEnvPath)
		if err != nil {
			return err
		}
		inst := rec.Instance

		if hostedgeResetArg {
			if err := inst.ResetHostEdgeConstraints(loc); err != nil {
				return err
			}
			fmt.Printf("reset host-edge mapping on %s\n", loc)
			return nil
		}

		override, err := parseHostEdgeOverride(hostedgeHost2AIE, hostedgeAIE2Host)
		if err != nil {
			return err
		}

		if err := inst.ConfigHostEdgeConstraints(loc, toHostEdgePorts(override.Host2AIE), toHostEdgePorts(override.AIE2Host)); err != nil {
			return err
		}

		fmt.Printf("configured host-edge mapping on %s\n", loc)
		return nil
	},
}

func init() {
	hostedgeCmd.Flags().StringVar(&hostedgeEnvPath, "env", "", "path to a .env file overriding the default geometry")
	hostedgeCmd.Flags().StringVar(&hostedgeHost2AIE, "host2aie", "", "comma-separated port:channel pairs, e.g. 3:0,7:1")
	hostedgeCmd.Flags().StringVar(&hostedgeAIE2Host, "aie2host", "", "comma-separated port:channel pairs, e.g. 2:0,3:1")
	hostedgeCmd.Flags().BoolVar(&hostedgeResetArg, "reset", false, "restore the factory host-edge mapping instead of applying an override")
	rootCmd.AddCommand(hostedgeCmd)
}

// parseHostEdgeOverride builds a config.HostEdgeOverride from the CLI's
// "port:channel,port:channel" flag syntax.
func parseHostEdgeOverride(host2aie, aie2host string) (config.HostEdgeOverride, error) {
	h2a, err := parsePortChannelList(host2aie)
	if err != nil {
		return config.HostEdgeOverride{}, err
	}
	a2h, err := parsePortChannelList(aie2host)
	if err != nil {
		return config.HostEdgeOverride{}, err
	}
	return config.HostEdgeOverride{Host2AIE: h2a, AIE2Host: a2h}, nil
}

func parsePortChannelList(s string) ([]config.HostEdgePortConfig, error) {
	if s == "" {
		return nil, nil
	}

	var out []config.HostEdgePortConfig
	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		fields := strings.SplitN(pair, ":", 2)
		if len(fields) != 2 {
			return nil, fmt.Errorf("routectl: invalid port:channel pair %q", pair)
		}
		port, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("routectl: invalid port in %q: %w", pair, err)
		}
		channel, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("routectl: invalid channel in %q: %w", pair, err)
		}
		out = append(out, config.HostEdgePortConfig{Port: port, Channel: channel})
	}
	return out, nil
}

// toHostEdgePorts converts config's dependency-free mapping rows into
// routing.HostEdgePort, marking every entry available the way a freshly
// applied override starts out.
func toHostEdgePorts(rows []config.HostEdgePortConfig) []routing.HostEdgePort {
	if rows == nil {
		return nil
	}
	out := make([]routing.HostEdgePort, len(rows))
	for i, r := range rows {
		out[i] = routing.HostEdgePort{Port: r.Port, Channel: r.Channel, Available: true}
	}
	return out
}
