package main

import (
	"fmt"
	"io/ioutil"
	"net/http"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// burnctl is a small operator tool hitting the plugin's status endpoint.

var serverURL string

var RootCmd = &cobra.Command{
	Use:   "burnctl",
	Short: "inspect the burn plugin",
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "show active burn sessions",
	RunE:  statusCmdF,
}

func init() {
	RootCmd.PersistentFlags().StringVar(&serverURL, "url",
		"http://localhost:8065", "base url of the mattermost server")
	RootCmd.AddCommand(statusCmd)
}

func statusCmdF(command *cobra.Command, args []string) error {
	client := &http.Client{Timeout: 10 * time.Second}

	url := serverURL + "/plugins/com.github.ericzzh.mattermost-plugin-burn/status"
	resp, err := client.Get(url)
	if err != nil {
		return errors.Wrapf(err, "burnctl: can't reach %s", url)
	}
	defer resp.Body.Close()

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrapf(err, "burnctl: can't read response")
	}

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("burnctl: server returned %d: %s", resp.StatusCode, string(body))
	}

	fmt.Println(string(body))
	return nil
}

func Run(args []string) error {
	RootCmd.SetArgs(args)
	return RootCmd.Execute()
}

func main() {
	if err := Run(os.Args[1:]); err != nil {
		os.Exit(1)
	}
}
