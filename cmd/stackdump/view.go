package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/gookit/color"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/gmodkit/glua/dump"
)

var (
	plainFlag       bool
	fingerprintFlag bool
)

var viewCmd = &cobra.Command{
	Use:   "view FILE",
	Short: "Render a snapshot file or a session manifest",
	Args:  cobra.MinimumNArgs(1),
	Run:   viewCommand,
}

func init() {
	viewCmd.Flags().BoolVar(&plainFlag, "plain", false, "Render the bare line-per-slot form without headers or color")
	viewCmd.Flags().BoolVar(&fingerprintFlag, "fingerprint", false, "Print each snapshot's content fingerprint")
}

func viewCommand(cmd *cobra.Command, args []string) {
	for _, path := range args {
		for _, snap := range loadArg(path) {
			printSnapshot(snap)
		}
	}
}

// loadArg treats .toml arguments as session manifests and everything else
// as a single serialized snapshot.
func loadArg(path string) []*dump.Snapshot {
	if strings.HasSuffix(path, ".toml") {
		session, err := dump.LoadSessionFromFile(path)
		if err != nil {
			log.Fatal().Err(err).Str("path", path).Msg("Couldn't load session manifest")
		}
		if session.Session.Name != "" {
			fmt.Println(color.Cyan.Sprintf("Session: %s", session.Session.Name))
		}
		snaps, err := session.LoadSnapshots()
		if err != nil {
			log.Fatal().Err(err).Str("path", path).Msg("Couldn't load session snapshots")
		}
		return snaps
	}

	f, err := os.Open(path)
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("Couldn't open snapshot file")
	}
	defer f.Close()
	snap := &dump.Snapshot{}
	if err := snap.Deserialize(f); err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("Couldn't decode snapshot")
	}
	return []*dump.Snapshot{snap}
}

func printSnapshot(snap *dump.Snapshot) {
	if plainFlag {
		fmt.Print(snap.Render())
	} else {
		fmt.Print(dump.FormatSnapshot(snap))
	}
	if fingerprintFlag {
		fp, err := snap.Fingerprint()
		if err != nil {
			log.Fatal().Err(err).Msg("Couldn't fingerprint snapshot")
		}
		fmt.Printf("fingerprint: 0x%016x\n", fp)
	}
}
