package display

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teranos/fuzzmatch/errors"
)

// ShouldOutputJSON determines if a command should output JSON based on
// flags and agent detection
func ShouldOutputJSON(cmd *cobra.Command) bool {
	// Handle nil command gracefully (e.g., when called from result rendering
	// without command context)
	if cmd == nil {
		return IsAgentEnvironment()
	}

	// Check if --json flag was explicitly set
	if cmd.Flags().Changed("json") {
		jsonFlag, _ := cmd.Flags().GetBool("json")
		return jsonFlag
	}

	// Check global --json flag
	if globalFlag, _ := cmd.Root().PersistentFlags().GetBool("json"); globalFlag {
		return true
	}

	// If no explicit flag and the caller is an agent, default to JSON
	return IsAgentEnvironment()
}

// OutputJSON marshals and prints JSON using display.MarshalJSON
func OutputJSON(v interface{}) error {
	data, err := MarshalJSON(v)
	if err != nil {
		return errors.Wrap(err, "marshaling JSON output")
	}
	fmt.Println(string(data))
	return nil
}
