package update

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-version"
	"github.com/satishbabariya/morsel/cli/internal/ui"
)

// releaseURL is the GitHub API endpoint for the newest release.
const releaseURL = "https://api.github.com/repos/satishbabariya/morsel/releases/latest"

// release is the subset of the GitHub release payload we read.
type release struct {
	TagName string `json:"tag_name"`
}

// CheckForUpdates compares the running version against the newest
// published release and prints upgrade instructions if one is newer.
func CheckForUpdates(currentVersion string) error {
	current, err := version.NewVersion(currentVersion)
	if err != nil {
		return fmt.Errorf("invalid version format: %w", err)
	}

	latestVersionStr, err := fetchLatestVersion()
	if err != nil {
		return fmt.Errorf("failed to check for updates: %w", err)
	}

	latest, err := version.NewVersion(latestVersionStr)
	if err != nil {
		return fmt.Errorf("invalid latest version format: %w", err)
	}

	if current.LessThan(latest) {
		ui.PrintWarning("A new version is available!")
		fmt.Printf("Current version: %s\n", currentVersion)
		fmt.Printf("Latest version:  %s\n", latestVersionStr)
		fmt.Printf("\nUpdate with: go install github.com/satishbabariya/morsel/cmd/morsel@latest\n")
		return nil
	}

	ui.PrintSuccess("You are on the latest version")
	return nil
}

// fetchLatestVersion asks the GitHub API for the newest release tag.
func fetchLatestVersion() (string, error) {
	client := &http.Client{Timeout: 10 * time.Second}

	resp, err := client.Get(releaseURL)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %s", resp.Status)
	}

	var rel release
	if err := json.NewDecoder(resp.Body).Decode(&rel); err != nil {
		return "", err
	}

	return strings.TrimPrefix(rel.TagName, "v"), nil
}
