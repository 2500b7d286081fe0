package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"pushcampaign/internal/util"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const releasePath = "/api/push/scheduled/release"

var (
	releaseAPIURL   string
	releaseLimit    int
	releaseInterval time.Duration
	releaseTimeout  time.Duration
)

type releaseResponse struct {
	Success  bool   `json:"success"`
	Released int    `json:"released"`
	Error    string `json:"error"`
}

var releaseCmd = &cobra.Command{
	Use:   "release",
	Short: "Release scheduled campaigns that are due",
	Long: `Ask the API to publish a dispatch event for every scheduled campaign whose time has come.

With --interval the release runs repeatedly until interrupted, acting as the scheduler tick.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		client := &http.Client{Timeout: releaseTimeout}
		out := cmd.OutOrStdout()

		if releaseInterval <= 0 {
			released, err := releaseDue(ctx, client, releaseAPIURL, releaseLimit)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Released %d campaign(s)\n", released)

			return nil
		}

		ticker := time.NewTicker(releaseInterval)
		defer ticker.Stop()

		for {
			released, err := releaseDue(ctx, client, releaseAPIURL, releaseLimit)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Release failed: %v\n", err)
			} else {
				fmt.Fprintf(out, "%s released %d campaign(s), next release in %s\n",
					time.Now().Format(time.RFC3339), released, util.FormatDuration(releaseInterval))
			}

			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
			}
		}
	},
}

func releaseDue(ctx context.Context, client *http.Client, apiURL string, limit int) (int, error) {
	payload, err := json.Marshal(map[string]int{"limit": limit})
	if err != nil {
		return 0, errors.WithStack(err)
	}

	url := strings.TrimRight(apiURL, "/") + releasePath
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return 0, errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return 0, errors.Wrap(err, "failed to execute request")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, errors.Wrap(err, "failed to read response body")
	}

	var result releaseResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return 0, errors.Wrapf(err, "unexpected response (status %d)", resp.StatusCode)
	}
	if !result.Success {
		return 0, errors.Errorf("release rejected (status %d): %s", resp.StatusCode, result.Error)
	}

	return result.Released, nil
}

func init() {
	rootCmd.AddCommand(releaseCmd)
	releaseCmd.Flags().StringVar(&releaseAPIURL, "api-url", "http://localhost:8080", "Base URL of the push campaign API")
	releaseCmd.Flags().IntVar(&releaseLimit, "limit", 0, "Maximum campaigns per release (0 uses the server batch size)")
	releaseCmd.Flags().DurationVar(&releaseInterval, "interval", 0, "Repeat the release at this interval until interrupted")
	releaseCmd.Flags().DurationVar(&releaseTimeout, "timeout", 30*time.Second, "HTTP request timeout")
}
