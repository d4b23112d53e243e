package k8s

import (
	log "github.com/sirupsen/logrus"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"

	"github.com/coxswain-io/coxswain/common"
)

// LoadConfig builds a rest.Config from the given kubeconfig path and falls
// back to the in-cluster config when the kubeconfig cannot be loaded.
func LoadConfig(kubeconfig string) (*rest.Config, error) {
	config, err := clientcmd.BuildConfigFromFlags("", kubeconfig)
	if err != nil {
		log.Info("Failed to load kubeconfig, falling back to in-cluster config...")

		config, err = rest.InClusterConfig()
		if err != nil {
			return nil, err
		}
	}

	config.Timeout = common.DefaultClientTimeout
	config.QPS = common.DefaultClientQPS
	config.Burst = common.DefaultClientBurst

	return config, nil
}
