package common

const (
	MetadataPrefix = "coxswain.io"
	ControllerName = "coxswain-controller"
)

var (
	// LabelKeyAppInstance is attached to every resource the controller
	// manages so live state can be listed back per application.
	LabelKeyAppInstance = MetadataPrefix + "/app-instance"

	// AnnotationKeyRefresh requests an out-of-band reconciliation pass.
	// The controller consumes and removes it.
	AnnotationKeyRefresh = MetadataPrefix + "/refresh"
)

// Sync option names recognized in spec.syncPolicy.syncOptions.
const (
	SyncOptionCreateNamespace = "CreateNamespace=true"
	SyncOptionNoValidate      = "Validate=false"
	SyncOptionPruneLast       = "PruneLast=true"
)
