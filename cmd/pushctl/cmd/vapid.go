package cmd

import (
	"fmt"

	webpush "github.com/SherClockHolmes/webpush-go"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var vapidCmd = &cobra.Command{
	Use:   "vapid",
	Short: "Manage VAPID application server keys",
}

var vapidGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a new VAPID key pair",
	Long:  "Generate a new VAPID key pair and print it as environment overrides for push.vapid.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		privateKey, publicKey, err := webpush.GenerateVAPIDKeys()
		if err != nil {
			return errors.Wrap(err, "failed to generate VAPID keys")
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "PUSH_VAPID_PUBLICKEY=%s\n", publicKey)
		fmt.Fprintf(out, "PUSH_VAPID_PRIVATEKEY=%s\n", privateKey)

		return nil
	},
}

func init() {
	vapidCmd.AddCommand(vapidGenerateCmd)
	rootCmd.AddCommand(vapidCmd)
}
