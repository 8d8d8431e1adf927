// Where: internal/app/cloud.go
// What: Cloud provisioning orchestration.
// Why: Best-effort creation of the hosted project before generation.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/wefthq/create-weft-app/internal/cloud"
	"github.com/wefthq/create-weft-app/internal/config"
	"github.com/wefthq/create-weft-app/internal/interaction"
	"github.com/wefthq/create-weft-app/internal/meta"
	"github.com/wefthq/create-weft-app/internal/ui"
)

// Login prompt answers.
const (
	cloudChoiceLogin = "login"
	cloudChoiceSkip  = "skip"
)

// provisionCloudProject runs the optional cloud sequence: config fetch,
// login offer, project creation, descriptor persistence. Every cloud-side
// failure is contained here; only a cancelled prompt is returned as an
// error and aborts the run.
func provisionCloudProject(ctx context.Context, projectName, installPath string, deps Dependencies, console *ui.Console) error {
	client := deps.Cloud.NewClient(deps.Cloud.APIBase)

	if _, err := client.Config(ctx); err != nil {
		console.Warn(cloud.DefaultErrorMessage)
		console.Debugf("cloud config fetch: %+v", err)
		return nil
	}
	if !deps.IsTerminal() {
		console.Debugf("no terminal attached, skipping cloud login offer")
		return nil
	}

	choice, err := deps.Prompter.SelectValue(
		"Weft Cloud can host your project. Would you like to log in?",
		[]interaction.SelectOption{
			{Label: "Login/Register", Value: cloudChoiceLogin},
			{Label: "Skip", Value: cloudChoiceSkip},
		},
	)
	if err != nil {
		return err
	}
	if choice != cloudChoiceLogin {
		return nil
	}

	token, err := deps.Cloud.Tokens.Retrieve()
	if err != nil {
		reportCloudError(console, err)
		return nil
	}
	if token == "" {
		token, err = deps.Cloud.Login(ctx, client, func(auth cloud.DeviceAuth) {
			console.Info(fmt.Sprintf("Open {cyan}%s{/cyan} and enter the code {bold}%s{/bold}", auth.VerificationURL, auth.UserCode))
		})
		if err != nil {
			if errors.Is(err, cloud.ErrLoginDeclined) {
				console.ItemPlain("Login declined. Skipping cloud project creation.")
				return nil
			}
			reportCloudError(console, err)
			return nil
		}
		if err := deps.Cloud.Tokens.Persist(token); err != nil {
			reportCloudError(console, err)
			return nil
		}
	}

	authClient := deps.Cloud.NewClientWithToken(deps.Cloud.APIBase, token)
	authCfg, err := authClient.Config(ctx)
	if err != nil {
		reportCloudError(console, err)
		return nil
	}

	payload := cloud.ProjectPayload{
		Name:   projectName,
		Plan:   authCfg.ProjectDefaults.Plan,
		Region: authCfg.ProjectDefaults.Region,
	}

	var (
		project   cloud.Project
		createErr error
	)
	spinErr := deps.Cloud.Spin("Creating your cloud project...", func() {
		project, createErr = authClient.CreateProject(ctx, payload)
	})
	if spinErr != nil && createErr == nil {
		// The project exists; a broken spinner is only a display problem.
		console.Debugf("spinner: %+v", spinErr)
	}
	if createErr != nil {
		reportCloudError(console, createErr)
		return nil
	}

	entry := config.ProjectEntry{
		ID:        project.ID,
		Name:      project.Name,
		Plan:      project.Plan,
		Region:    project.Region,
		CreatedAt: project.CreatedAt,
	}
	if err := deps.Cloud.SaveProject(installPath, entry); err != nil {
		reportCloudError(console, err)
		return nil
	}

	console.Success(fmt.Sprintf("Cloud project {green}%s{/green} created", project.Name))
	console.Info(fmt.Sprintf("Manage it at {cyan}%s{/cyan}", meta.DashboardURL))
	return nil
}

// reportCloudError prints the user-facing message for a provisioning
// failure. A 403 carries the server message when present.
func reportCloudError(console *ui.Console, err error) {
	var apiErr *cloud.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusForbidden {
		message := apiErr.Message
		if message == "" {
			message = cloud.ForbiddenMessage
		}
		console.Error(message)
	} else {
		console.Error(cloud.DefaultErrorMessage)
	}
	console.Debugf("cloud provisioning: %+v", err)
}
