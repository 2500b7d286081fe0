package cmd

import (
	"fmt"
	"os"

	"pushcampaign/internal/infra/qrcode"
	"pushcampaign/internal/util"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	qrOutput  string
	qrSize    int
	qrLevel   string
	qrBaseURL string
)

var qrCmd = &cobra.Command{
	Use:   "qr <storeId>",
	Short: "Render the subscription QR code of a store",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		storeID := args[0]
		svc := qrcode.NewQRCodeService(qrSize, qrLevel, qrBaseURL)

		subscribeURL, err := svc.SubscribeURL(storeID)
		if err != nil {
			return err
		}

		png, err := svc.GenerateStoreQR(storeID)
		if err != nil {
			return err
		}

		output := qrOutput
		if output == "" {
			output = storeID + "-qr.png"
		}
		if err := os.WriteFile(output, png, 0o644); err != nil { //nolint:gosec
			return errors.Wrapf(err, "failed to write %s", output)
		}

		checksum, err := util.CalculateFileChecksum(output)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "URL:      %s\n", subscribeURL)
		fmt.Fprintf(out, "File:     %s (%s)\n", output, util.FormatBytes(int64(len(png))))
		fmt.Fprintf(out, "SHA-256:  %s\n", checksum)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(qrCmd)
	qrCmd.Flags().StringVarP(&qrOutput, "output", "o", "", "Output PNG path (default <storeId>-qr.png)")
	qrCmd.Flags().IntVar(&qrSize, "size", 256, "Image size in pixels")
	qrCmd.Flags().StringVar(&qrLevel, "level", "M", "Error correction level (L, M, Q, H)")
	qrCmd.Flags().StringVar(&qrBaseURL, "base-url", "", "Subscribe page URL the QR code opens")
	_ = qrCmd.MarkFlagRequired("base-url")
}
