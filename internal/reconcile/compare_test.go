package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"sigs.k8s.io/yaml"

	"github.com/coxswain-io/coxswain/pkg/apis/application/v1alpha1"
)

func obj(t *testing.T, manifest string) *unstructured.Unstructured {
	t.Helper()
	var m map[string]interface{}
	require.NoError(t, yaml.Unmarshal([]byte(manifest), &m))
	return &unstructured.Unstructured{Object: m}
}

const desiredConfigMap = `
apiVersion: v1
kind: ConfigMap
metadata:
  name: app-config
  namespace: team-a
data:
  key: value
`

const liveConfigMap = `
apiVersion: v1
kind: ConfigMap
metadata:
  name: app-config
  namespace: team-a
  uid: 0a1b2c3d
  resourceVersion: "4711"
  generation: 2
  creationTimestamp: "2024-01-01T00:00:00Z"
  managedFields:
  - manager: coxswain
  annotations:
    kubectl.kubernetes.io/last-applied-configuration: '{"apiVersion":"v1"}'
data:
  key: value
`

func TestCompare(t *testing.T) {
	t.Run("identical resources are synced", func(t *testing.T) {
		desired := []*unstructured.Unstructured{obj(t, desiredConfigMap)}
		live := []*unstructured.Unstructured{obj(t, desiredConfigMap)}

		result := Compare(desired, live, "team-a")

		assert.Equal(t, v1alpha1.SyncStatusCodeSynced, result.SyncStatus)
		require.Len(t, result.Resources, 1)
		assert.True(t, result.Resources[0].InSync)
	})

	t.Run("server-populated fields are ignored", func(t *testing.T) {
		desired := []*unstructured.Unstructured{obj(t, desiredConfigMap)}
		live := []*unstructured.Unstructured{obj(t, liveConfigMap)}

		result := Compare(desired, live, "team-a")

		assert.Equal(t, v1alpha1.SyncStatusCodeSynced, result.SyncStatus)
		assert.True(t, result.Resources[0].InSync)
	})

	t.Run("field drift is out of sync", func(t *testing.T) {
		desired := []*unstructured.Unstructured{obj(t, desiredConfigMap)}
		changed := obj(t, liveConfigMap)
		require.NoError(t, unstructured.SetNestedField(changed.Object, "edited-by-hand", "data", "key"))
		live := []*unstructured.Unstructured{changed}

		result := Compare(desired, live, "team-a")

		assert.Equal(t, v1alpha1.SyncStatusCodeOutOfSync, result.SyncStatus)
		assert.False(t, result.Resources[0].InSync)
		assert.False(t, result.Resources[0].RequiresPruning)
	})

	t.Run("missing live resource is out of sync", func(t *testing.T) {
		desired := []*unstructured.Unstructured{obj(t, desiredConfigMap)}

		result := Compare(desired, nil, "team-a")

		assert.Equal(t, v1alpha1.SyncStatusCodeOutOfSync, result.SyncStatus)
		require.Len(t, result.Resources, 1)
		assert.Nil(t, result.Resources[0].Live)
		assert.False(t, result.Resources[0].InSync)
	})

	t.Run("orphaned live resource requires pruning", func(t *testing.T) {
		live := []*unstructured.Unstructured{obj(t, liveConfigMap)}

		result := Compare(nil, live, "team-a")

		assert.Equal(t, v1alpha1.SyncStatusCodeOutOfSync, result.SyncStatus)
		require.Len(t, result.Resources, 1)
		assert.True(t, result.Resources[0].RequiresPruning)
		assert.Nil(t, result.Resources[0].Desired)
	})

	t.Run("namespace defaulting keys into destination", func(t *testing.T) {
		desired := obj(t, desiredConfigMap)
		unstructured.RemoveNestedField(desired.Object, "metadata", "namespace")
		live := []*unstructured.Unstructured{obj(t, liveConfigMap)}

		result := Compare([]*unstructured.Unstructured{desired}, live, "team-a")

		assert.Equal(t, v1alpha1.SyncStatusCodeSynced, result.SyncStatus)
		assert.Equal(t, "team-a", result.Resources[0].Key.Namespace)
	})

	t.Run("empty destination namespace falls back to default", func(t *testing.T) {
		// The applier writes namespace-less objects into "default" when the
		// destination leaves the namespace unset; the comparison has to key
		// them the same way or a synced app flaps between apply and prune.
		desired := obj(t, desiredConfigMap)
		unstructured.RemoveNestedField(desired.Object, "metadata", "namespace")
		live := obj(t, liveConfigMap)
		require.NoError(t, unstructured.SetNestedField(live.Object, "default", "metadata", "namespace"))

		result := Compare([]*unstructured.Unstructured{desired}, []*unstructured.Unstructured{live}, "")

		assert.Equal(t, v1alpha1.SyncStatusCodeSynced, result.SyncStatus)
		require.Len(t, result.Resources, 1)
		assert.True(t, result.Resources[0].InSync)
		assert.False(t, result.Resources[0].RequiresPruning)
		assert.Equal(t, "default", result.Resources[0].Key.Namespace)

		assert.True(t, BuildPlan(result, true).Empty())
	})

	t.Run("cluster-scoped kinds are not namespaced", func(t *testing.T) {
		ns := obj(t, `
apiVersion: v1
kind: Namespace
metadata:
  name: team-a
`)
		result := Compare([]*unstructured.Unstructured{ns}, []*unstructured.Unstructured{ns.DeepCopy()}, "team-a")

		assert.Equal(t, v1alpha1.SyncStatusCodeSynced, result.SyncStatus)
		assert.Empty(t, result.Resources[0].Key.Namespace)
	})

	t.Run("list elements use subset matching", func(t *testing.T) {
		desired := obj(t, `
apiVersion: apps/v1
kind: Deployment
metadata:
  name: web
  namespace: team-a
spec:
  replicas: 2
  template:
    spec:
      containers:
      - name: web
        image: nginx:1.25
`)
		live := obj(t, `
apiVersion: apps/v1
kind: Deployment
metadata:
  name: web
  namespace: team-a
  resourceVersion: "99"
spec:
  replicas: 2
  template:
    spec:
      containers:
      - name: web
        image: nginx:1.25
        imagePullPolicy: IfNotPresent
        terminationMessagePath: /dev/termination-log
status:
  readyReplicas: 2
`)

		result := Compare([]*unstructured.Unstructured{desired}, []*unstructured.Unstructured{live}, "team-a")

		assert.True(t, result.Resources[0].InSync)
	})

	t.Run("list length change is drift", func(t *testing.T) {
		desired := obj(t, `
apiVersion: apps/v1
kind: Deployment
metadata:
  name: web
  namespace: team-a
spec:
  template:
    spec:
      containers:
      - name: web
        image: nginx:1.25
      - name: sidecar
        image: envoy:1.30
`)
		live := obj(t, `
apiVersion: apps/v1
kind: Deployment
metadata:
  name: web
  namespace: team-a
spec:
  template:
    spec:
      containers:
      - name: web
        image: nginx:1.25
`)

		result := Compare([]*unstructured.Unstructured{desired}, []*unstructured.Unstructured{live}, "team-a")

		assert.False(t, result.Resources[0].InSync)
	})

	t.Run("results are ordered deterministically", func(t *testing.T) {
		a := obj(t, desiredConfigMap)
		b := obj(t, desiredConfigMap)
		require.NoError(t, unstructured.SetNestedField(b.Object, "another-config", "metadata", "name"))

		first := Compare([]*unstructured.Unstructured{a, b}, nil, "team-a")
		second := Compare([]*unstructured.Unstructured{b, a}, nil, "team-a")

		require.Len(t, first.Resources, 2)
		assert.Equal(t, first.Resources[0].Key, second.Resources[0].Key)
		assert.Equal(t, "another-config", first.Resources[0].Key.Name)
	})

	t.Run("empty inputs are synced", func(t *testing.T) {
		result := Compare(nil, nil, "team-a")

		assert.Equal(t, v1alpha1.SyncStatusCodeSynced, result.SyncStatus)
		assert.Empty(t, result.Resources)
	})
}

func TestResourceStatuses(t *testing.T) {
	desired := []*unstructured.Unstructured{obj(t, desiredConfigMap)}
	orphan := obj(t, liveConfigMap)
	require.NoError(t, unstructured.SetNestedField(orphan.Object, "stale-config", "metadata", "name"))

	result := Compare(desired, []*unstructured.Unstructured{orphan}, "team-a")
	statuses := result.ResourceStatuses()

	require.Len(t, statuses, 2)

	byName := map[string]v1alpha1.ResourceStatus{}
	for _, s := range statuses {
		byName[s.Name] = s
	}

	missing := byName["app-config"]
	assert.Equal(t, v1alpha1.SyncStatusCodeOutOfSync, missing.Status)
	require.NotNil(t, missing.Health)
	assert.Equal(t, v1alpha1.HealthStatusMissing, missing.Health.Status)
	assert.Equal(t, "v1", missing.Version)

	stale := byName["stale-config"]
	assert.True(t, stale.RequiresPruning)
	assert.Equal(t, v1alpha1.SyncStatusCodeOutOfSync, stale.Status)
}

func TestAggregateHealth(t *testing.T) {
	t.Run("declared but missing resources dominate", func(t *testing.T) {
		desired := []*unstructured.Unstructured{obj(t, desiredConfigMap)}

		result := Compare(desired, nil, "team-a")
		h := result.AggregateHealth()

		assert.Equal(t, v1alpha1.HealthStatusMissing, h.Status)
	})

	t.Run("orphans do not gate health", func(t *testing.T) {
		desired := []*unstructured.Unstructured{obj(t, desiredConfigMap)}
		orphan := obj(t, liveConfigMap)
		require.NoError(t, unstructured.SetNestedField(orphan.Object, "stale-config", "metadata", "name"))
		live := []*unstructured.Unstructured{obj(t, liveConfigMap), orphan}

		result := Compare(desired, live, "team-a")
		h := result.AggregateHealth()

		assert.Equal(t, v1alpha1.HealthStatusHealthy, h.Status)
	})
}
