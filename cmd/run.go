package cmd

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"k8s.io/client-go/discovery"
	"k8s.io/client-go/dynamic"
	"k8s.io/client-go/kubernetes"

	log "github.com/sirupsen/logrus"

	"github.com/coxswain-io/coxswain/common"
	"github.com/coxswain-io/coxswain/internal/controller"
	"github.com/coxswain-io/coxswain/internal/metrics"
	appclient "github.com/coxswain-io/coxswain/pkg/clientset/versioned"
	appinformers "github.com/coxswain-io/coxswain/pkg/informers/externalversions"
	"github.com/coxswain-io/coxswain/pkg/signals"
	"github.com/coxswain-io/coxswain/utils/git"
	k8sutil "github.com/coxswain-io/coxswain/utils/k8s"
	"github.com/coxswain-io/coxswain/utils/kube"
)

var (
	numWorkers    int
	appResync     time.Duration
	metricsAddr   string
	repoCacheRoot string
	gitToken      string
	syncTimeout   time.Duration
	applyTimeout  time.Duration
	healthGrace   time.Duration
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the coxswain controller",
	Long:  `Run the coxswain controller. Can be run locally with kubeconfig provided or in-cluster.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := k8sutil.LoadConfig(kubeconfig)
		if err != nil {
			return err
		}

		token := gitToken
		if token == "" {
			token = os.Getenv("GIT_TOKEN")
		}
		gitClient := git.NewClient(token)

		clientSet, err := kubernetes.NewForConfig(config)
		if err != nil {
			return err
		}
		appClientSet, err := appclient.NewForConfig(config)
		if err != nil {
			return err
		}
		discoveryClient, err := discovery.NewDiscoveryClientForConfig(config)
		if err != nil {
			return err
		}
		dynClientSet, err := dynamic.NewForConfig(config)
		if err != nil {
			return err
		}
		kubeClient := kube.NewClient(discoveryClient, dynClientSet)

		appInformerFactory := appinformers.NewSharedInformerFactory(appClientSet, time.Second*30)
		stopCh := signals.SetupSignalHandler()

		metricsServer := metrics.NewServer(metricsAddr)
		go func() {
			if err := metricsServer.Start(stopCh); err != nil {
				log.WithError(err).Error("Metrics server stopped")
			}
		}()

		ctrl := controller.NewController(
			clientSet,
			appClientSet,
			appInformerFactory.Coxswain().V1alpha1().Applications(),
			gitClient,
			kubeClient,
			controller.Options{
				RepoRoot:     repoCacheRoot,
				ResyncPeriod: appResync,
				SyncTimeout:  syncTimeout,
				ApplyTimeout: applyTimeout,
				HealthGrace:  healthGrace,
			},
		)
		appInformerFactory.Start(stopCh)
		if err := ctrl.Run(numWorkers, stopCh); err != nil {
			return err
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.PersistentFlags().IntVarP(&numWorkers, "workers", "w", 2, "Number of workers")
	runCmd.PersistentFlags().DurationVar(&appResync, "app-resync", common.DefaultAppResyncPeriod, "Interval between two reconciliation passes of the same application")
	runCmd.PersistentFlags().StringVar(&metricsAddr, "metrics-addr", common.DefaultMetricsAddr, "Listen address for /metrics and /healthz")
	runCmd.PersistentFlags().StringVar(&repoCacheRoot, "repo-cache-root", "", "Directory for repository clones. Defaults to the system temp directory.")
	runCmd.PersistentFlags().StringVar(&gitToken, "git-token", "", "Token for private repositories. Falls back to the GIT_TOKEN environment variable.")
	runCmd.PersistentFlags().DurationVar(&syncTimeout, "sync-timeout", common.DefaultSyncTimeout, "Upper bound for one whole sync pass")
	runCmd.PersistentFlags().DurationVar(&applyTimeout, "apply-timeout", common.DefaultApplyTimeout, "Upper bound for applying one resource")
	runCmd.PersistentFlags().DurationVar(&healthGrace, "health-grace", common.DefaultHealthGracePeriod, "How long a sync waits for applied resources to become healthy")
}
