package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

type scaffoldKey struct {
	key     string
	comment string
}

// configScaffold lists the keys written by init, in file order.
var configScaffold = []scaffoldKey{
	{configVersionKey, "Config schema version."},
	{outputFlagName, "Pool file written by mine and read by view. A .db suffix selects sqlite."},
	{mineParallelConfigKey, "Number of pairs prepared ahead of the miner."},
	{contextDepthConfigKey, "Ancestor levels recorded in each pool context."},
	{dedupConfigKey, "Duplicate scope: global or context."},
	{cacheSizeConfigKey, "Parsed trees kept in memory. Non-positive values use the default."},
	{appendConfigKey, "Merge new changes into an existing pool instead of replacing it."},
	{extConfigKey, "Source extensions collected from before/after directories."},
	{journalDirConfigKey, "Directory for the on-disk change journal. Empty uses the system temp dir."},
	{logFilenameKey, "Rotated log file."},
	{logLevelKey, "debug, info, warn or error."},
	{logVerboseKey, "Also log to stderr."},
	{logMaxSizeKey, "Megabytes before the log is rotated."},
	{logMaxBackupsKey, ""},
	{logMaxAgeKey, "Days to keep rotated logs."},
	{logCompressKey, ""},
}

// initCmd represents the init command.
var initCmd = newInitCmd()

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Generate a default fixpool.yaml configuration file",
		Long: `Create a commented fixpool.yaml in the current working directory populated
with the current settings so it can be edited manually.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			targetPath := filepath.Join(configFolderPath, configFileName)

			if err := writeConfigScaffold(targetPath); err != nil {
				return fmt.Errorf("failed to write config file: %w", err)
			}

			return nil
		},
	}
}

func writeConfigScaffold(path string) error {
	doc, err := scaffoldDocument()
	if err != nil {
		return err
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%s already exists", path)
		}

		return err
	}

	encoder := yaml.NewEncoder(file)
	encoder.SetIndent(2)

	if err := encoder.Encode(doc); err != nil {
		_ = file.Close()
		return err
	}

	if err := encoder.Close(); err != nil {
		_ = file.Close()
		return err
	}

	return file.Close()
}

// scaffoldDocument builds the config tree from the current viper values.
func scaffoldDocument() (*yaml.Node, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}

	for _, entry := range configScaffold {
		parts := strings.Split(entry.key, ".")

		parent := root
		for _, part := range parts[:len(parts)-1] {
			parent = childMapping(parent, part)
		}

		value := &yaml.Node{}
		if err := value.Encode(viper.Get(entry.key)); err != nil {
			return nil, fmt.Errorf("encode %s: %w", entry.key, err)
		}

		key := &yaml.Node{Kind: yaml.ScalarNode, Value: parts[len(parts)-1], HeadComment: entry.comment}
		parent.Content = append(parent.Content, key, value)
	}

	return &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{root}}, nil
}

func childMapping(parent *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(parent.Content); i += 2 {
		if parent.Content[i].Value == key {
			return parent.Content[i+1]
		}
	}

	child := &yaml.Node{Kind: yaml.MappingNode}
	parent.Content = append(parent.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: key}, child)

	return child
}

func init() {
	rootCmd.AddCommand(initCmd)
}
