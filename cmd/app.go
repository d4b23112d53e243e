package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/util/wait"
	"k8s.io/client-go/util/retry"
	"sigs.k8s.io/yaml"

	"github.com/coxswain-io/coxswain/common"
	"github.com/coxswain-io/coxswain/pkg/apis/application/v1alpha1"
	appclient "github.com/coxswain-io/coxswain/pkg/clientset/versioned"
	k8sutil "github.com/coxswain-io/coxswain/utils/k8s"
)

var (
	appNamespace string
	outputFormat string

	syncRevision string
	syncPrune    bool
	syncDryRun   bool
	syncWait     time.Duration

	hardRefresh bool
)

var appCmd = &cobra.Command{
	Use:   "app",
	Short: "Inspect and operate applications",
}

func newAppClientSet() (appclient.Interface, error) {
	config, err := k8sutil.LoadConfig(kubeconfig)
	if err != nil {
		return nil, err
	}

	return appclient.NewForConfig(config)
}

var appGetCmd = &cobra.Command{
	Use:   "get NAME",
	Short: "Show the sync and health state of an application",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		clientSet, err := newAppClientSet()
		if err != nil {
			return err
		}
		app, err := clientSet.CoxswainV1alpha1().Applications(appNamespace).Get(cmd.Context(), args[0], metav1.GetOptions{})
		if err != nil {
			return err
		}

		switch outputFormat {
		case "yaml":
			out, err := yaml.Marshal(app)
			if err != nil {
				return err
			}
			fmt.Print(string(out))
		case "wide":
			printAppSummary(app)
			fmt.Println()
			printAppResources(app)
		case "":
			printAppSummary(app)
		default:
			return fmt.Errorf("unknown output format: %q", outputFormat)
		}

		return nil
	},
}

var appSyncCmd = &cobra.Command{
	Use:   "sync NAME",
	Short: "Trigger a sync and wait for it to finish",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		clientSet, err := newAppClientSet()
		if err != nil {
			return err
		}
		appIf := clientSet.CoxswainV1alpha1().Applications(appNamespace)

		op := &v1alpha1.Operation{
			Sync: &v1alpha1.SyncOperation{
				Revision: syncRevision,
				Prune:    syncPrune,
				DryRun:   syncDryRun,
			},
			InitiatedBy: v1alpha1.OperationInitiator{Username: os.Getenv("USER")},
		}

		err = retry.RetryOnConflict(retry.DefaultRetry, func() error {
			app, err := appIf.Get(cmd.Context(), name, metav1.GetOptions{})
			if err != nil {
				return err
			}
			if app.Operation != nil {
				return errors.New("another sync operation is already pending")
			}
			app.Operation = op
			_, err = appIf.Update(cmd.Context(), app, metav1.UpdateOptions{})
			return err
		})
		if err != nil {
			return err
		}
		fmt.Printf("sync of %s requested, waiting up to %s for it to finish\n", name, syncWait)

		var finalState *v1alpha1.OperationState
		err = wait.PollUntilContextTimeout(cmd.Context(), 2*time.Second, syncWait, true, func(ctx context.Context) (bool, error) {
			app, err := appIf.Get(ctx, name, metav1.GetOptions{})
			if err != nil {
				return false, err
			}
			// The controller clears the request once it picks the sync up
			if app.Operation != nil {
				return false, nil
			}
			opState := app.Status.OperationState
			if opState == nil || !opState.Phase.Completed() {
				return false, nil
			}
			finalState = opState
			return true, nil
		})
		if err != nil {
			return fmt.Errorf("waiting for the sync to complete: %w", err)
		}

		if finalState.SyncResult != nil {
			printSyncResult(finalState.SyncResult)
		}
		fmt.Printf("%s: %s\n", finalState.Phase, finalState.Message)
		if !finalState.Phase.Successful() {
			return fmt.Errorf("sync finished with phase %s", finalState.Phase)
		}

		return nil
	},
}

var appRefreshCmd = &cobra.Command{
	Use:   "refresh NAME",
	Short: "Request a reconciliation pass outside the regular schedule",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		clientSet, err := newAppClientSet()
		if err != nil {
			return err
		}
		appIf := clientSet.CoxswainV1alpha1().Applications(appNamespace)

		refreshType := v1alpha1.RefreshTypeNormal
		if hardRefresh {
			refreshType = v1alpha1.RefreshTypeHard
		}

		err = retry.RetryOnConflict(retry.DefaultRetry, func() error {
			app, err := appIf.Get(cmd.Context(), name, metav1.GetOptions{})
			if err != nil {
				return err
			}
			if app.Annotations == nil {
				app.Annotations = map[string]string{}
			}
			app.Annotations[common.AnnotationKeyRefresh] = string(refreshType)
			_, err = appIf.Update(cmd.Context(), app, metav1.UpdateOptions{})
			return err
		})
		if err != nil {
			return err
		}

		fmt.Printf("%s refresh of %s requested\n", refreshType, name)
		return nil
	},
}

var appHistoryCmd = &cobra.Command{
	Use:   "history NAME",
	Short: "Show the deployment history of an application",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		clientSet, err := newAppClientSet()
		if err != nil {
			return err
		}
		app, err := clientSet.CoxswainV1alpha1().Applications(appNamespace).Get(cmd.Context(), args[0], metav1.GetOptions{})
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tREVISION\tDEPLOYED\tDURATION")
		for _, h := range app.Status.History {
			duration := ""
			if h.DeployStartedAt != nil {
				duration = h.DeployedAt.Sub(h.DeployStartedAt.Time).Round(time.Second).String()
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", h.ID, h.Revision, h.DeployedAt.Format(time.RFC3339), duration)
		}
		return w.Flush()
	},
}

func printAppSummary(app *v1alpha1.Application) {
	sync := string(app.Status.Sync.Status)
	if sync == "" {
		sync = string(v1alpha1.SyncStatusCodeUnknown)
	}
	if app.Status.Sync.Revision != "" {
		sync = fmt.Sprintf("%s (%s)", sync, app.Status.Sync.Revision)
	}
	health := string(app.Status.Health.Status)
	if health == "" {
		health = string(v1alpha1.HealthStatusUnknown)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Name:\t%s\n", app.Name)
	fmt.Fprintf(w, "Namespace:\t%s\n", app.Namespace)
	fmt.Fprintf(w, "Repo:\t%s\n", app.Spec.Source.RepoURL)
	fmt.Fprintf(w, "Target:\t%s\n", app.Spec.Source.TargetRevision)
	fmt.Fprintf(w, "Path:\t%s\n", app.Spec.Source.Path)
	fmt.Fprintf(w, "Destination:\t%s\n", app.Spec.Destination.Namespace)
	fmt.Fprintf(w, "Sync:\t%s\n", sync)
	fmt.Fprintf(w, "Health:\t%s\n", health)
	if opState := app.Status.OperationState; opState != nil {
		fmt.Fprintf(w, "Operation:\t%s (%s)\n", opState.Phase, opState.Message)
	}
	for _, cond := range app.Status.Conditions {
		fmt.Fprintf(w, "Condition:\t%s: %s\n", cond.Type, cond.Message)
	}
	w.Flush()
}

func printAppResources(app *v1alpha1.Application) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "GROUP\tKIND\tNAMESPACE\tNAME\tSTATUS\tHEALTH")
	for _, r := range app.Status.Resources {
		health := ""
		if r.Health != nil {
			health = string(r.Health.Status)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", r.Group, r.Kind, r.Namespace, r.Name, r.Status, health)
	}
	w.Flush()
}

func printSyncResult(result *v1alpha1.SyncOperationResult) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "KIND\tNAMESPACE\tNAME\tSTATUS\tATTEMPTS\tMESSAGE")
	for _, r := range result.Resources {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n", r.Kind, r.Namespace, r.Name, r.Status, r.Attempts, r.Message)
	}
	w.Flush()
}

func init() {
	rootCmd.AddCommand(appCmd)
	appCmd.AddCommand(appGetCmd, appSyncCmd, appRefreshCmd, appHistoryCmd)

	appCmd.PersistentFlags().StringVarP(&appNamespace, "namespace", "n", "default", "Namespace of the application")

	appGetCmd.Flags().StringVarP(&outputFormat, "output", "o", "", "Output format (wide, yaml)")

	appSyncCmd.Flags().StringVar(&syncRevision, "revision", "", "Sync to this revision instead of spec.source.targetRevision")
	appSyncCmd.Flags().BoolVar(&syncPrune, "prune", false, "Delete live resources that are no longer declared")
	appSyncCmd.Flags().BoolVar(&syncDryRun, "dry-run", false, "Run the sync against the API server without persisting anything")
	appSyncCmd.Flags().DurationVar(&syncWait, "timeout", 5*time.Minute, "How long to wait for the operation to complete")

	appRefreshCmd.Flags().BoolVar(&hardRefresh, "hard", false, "Also discard the cached repository clone")
}
