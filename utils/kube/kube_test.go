package kube

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/runtime/schema"
	fakediscovery "k8s.io/client-go/discovery/fake"
	dynamicfake "k8s.io/client-go/dynamic/fake"
	"k8s.io/client-go/kubernetes/scheme"
	clienttesting "k8s.io/client-go/testing"
)

var configMapGVR = schema.GroupVersionResource{Version: "v1", Resource: "configmaps"}

func newTestClient(t *testing.T, objects ...runtime.Object) (Client, *dynamicfake.FakeDynamicClient) {
	t.Helper()

	disc := &fakediscovery.FakeDiscovery{
		Fake: &clienttesting.Fake{
			Resources: []*metav1.APIResourceList{
				{
					GroupVersion: "v1",
					APIResources: []metav1.APIResource{
						{Name: "configmaps", Namespaced: true, Kind: "ConfigMap", Verbs: metav1.Verbs{"list", "get", "create", "update", "delete"}},
						{Name: "namespaces", Namespaced: false, Kind: "Namespace", Verbs: metav1.Verbs{"list", "get", "create"}},
					},
				},
				{
					GroupVersion: "apps/v1",
					APIResources: []metav1.APIResource{
						{Name: "deployments", Namespaced: true, Kind: "Deployment", Verbs: metav1.Verbs{"list", "get", "create", "update", "delete"}},
					},
				},
			},
		},
	}
	dyn := dynamicfake.NewSimpleDynamicClient(scheme.Scheme, objects...)

	return NewClient(disc, dyn), dyn
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLoadManifests(t *testing.T) {
	c, _ := newTestClient(t)

	t.Run("loads yaml and json, skips other files", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "app.yaml", `# a comment-only document
---
apiVersion: v1
kind: ConfigMap
metadata:
  name: settings
data:
  key: value
---
apiVersion: apps/v1
kind: Deployment
metadata:
  name: web
spec:
  replicas: 2
`)
		writeFile(t, dir, "sub/svc.json", `{"apiVersion": "v1", "kind": "Service", "metadata": {"name": "web"}, "spec": {"ports": [{"port": 80}]}}`)
		writeFile(t, dir, "README.txt", "not a manifest")

		objs, err := c.LoadManifests(dir)
		require.NoError(t, err)
		require.Len(t, objs, 3)
		assert.Equal(t, "settings", objs[0].GetName())
		assert.Equal(t, "web", objs[1].GetName())
		assert.Equal(t, "Service", objs[2].GetKind())
	})

	t.Run("malformed document fails the whole load", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "good.yaml", `
apiVersion: v1
kind: ConfigMap
metadata:
  name: good
`)
		writeFile(t, dir, "zz-bad.yaml", "key: [unclosed\n")

		objs, err := c.LoadManifests(dir)
		assert.Error(t, err)
		assert.Nil(t, objs)
	})

	t.Run("document without a name is rejected", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "noname.yaml", `
apiVersion: v1
kind: ConfigMap
metadata: {}
`)

		_, err := c.LoadManifests(dir)
		assert.ErrorContains(t, err, "missing apiVersion, kind or metadata.name")
	})

	t.Run("empty directory yields no objects", func(t *testing.T) {
		objs, err := c.LoadManifests(t.TempDir())
		require.NoError(t, err)
		assert.Empty(t, objs)
	})
}

func TestSetLabelsForResources(t *testing.T) {
	c, _ := newTestClient(t)

	obj := &unstructured.Unstructured{Object: map[string]interface{}{
		"apiVersion": "v1",
		"kind":       "ConfigMap",
		"metadata": map[string]interface{}{
			"name": "settings",
			"labels": map[string]interface{}{
				"team": "platform",
			},
		},
	}}

	err := c.SetLabelsForResources([]*unstructured.Unstructured{obj}, map[string]string{"coxswain.io/app-instance": "demo"})
	require.NoError(t, err)

	// Existing labels survive the merge
	assert.Equal(t, map[string]string{
		"team":                     "platform",
		"coxswain.io/app-instance": "demo",
	}, obj.GetLabels())
}

func newConfigMap(name, namespace string, data map[string]interface{}) *unstructured.Unstructured {
	return &unstructured.Unstructured{Object: map[string]interface{}{
		"apiVersion": "v1",
		"kind":       "ConfigMap",
		"metadata": map[string]interface{}{
			"name":      name,
			"namespace": namespace,
		},
		"data": data,
	}}
}

func TestApplyResource(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a missing object", func(t *testing.T) {
		c, dyn := newTestClient(t)

		obj := newConfigMap("settings", "", map[string]interface{}{"key": "value"})
		err := c.ApplyResource(ctx, obj, "team-a", ApplyOptions{Validate: true})
		require.NoError(t, err)

		// Namespace defaulted from the destination
		live, err := dyn.Resource(configMapGVR).Namespace("team-a").Get(ctx, "settings", metav1.GetOptions{})
		require.NoError(t, err)
		assert.Equal(t, "value", live.Object["data"].(map[string]interface{})["key"])
	})

	t.Run("updates an existing object", func(t *testing.T) {
		existing := &corev1.ConfigMap{
			ObjectMeta: metav1.ObjectMeta{Name: "settings", Namespace: "team-a"},
			Data:       map[string]string{"key": "old"},
		}
		c, dyn := newTestClient(t, existing)

		obj := newConfigMap("settings", "team-a", map[string]interface{}{"key": "new"})
		err := c.ApplyResource(ctx, obj, "team-a", ApplyOptions{Validate: true})
		require.NoError(t, err)

		live, err := dyn.Resource(configMapGVR).Namespace("team-a").Get(ctx, "settings", metav1.GetOptions{})
		require.NoError(t, err)
		assert.Equal(t, "new", live.Object["data"].(map[string]interface{})["key"])
	})

	t.Run("unknown kind fails to map", func(t *testing.T) {
		c, _ := newTestClient(t)

		obj := &unstructured.Unstructured{Object: map[string]interface{}{
			"apiVersion": "example.com/v1",
			"kind":       "Gadget",
			"metadata":   map[string]interface{}{"name": "g"},
		}}
		err := c.ApplyResource(ctx, obj, "team-a", ApplyOptions{Validate: true})
		assert.ErrorContains(t, err, "failed to map")
	})
}

func TestDeleteResource(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes an existing object", func(t *testing.T) {
		existing := &corev1.ConfigMap{
			ObjectMeta: metav1.ObjectMeta{Name: "settings", Namespace: "team-a"},
		}
		c, dyn := newTestClient(t, existing)

		obj := newConfigMap("settings", "team-a", nil)
		require.NoError(t, c.DeleteResource(ctx, obj, "team-a"))

		_, err := dyn.Resource(configMapGVR).Namespace("team-a").Get(ctx, "settings", metav1.GetOptions{})
		assert.Error(t, err)
	})

	t.Run("missing object is not an error", func(t *testing.T) {
		c, _ := newTestClient(t)

		obj := newConfigMap("gone", "team-a", nil)
		assert.NoError(t, c.DeleteResource(ctx, obj, "team-a"))
	})
}

func TestEnsureNamespace(t *testing.T) {
	ctx := context.Background()
	namespaceGVR := schema.GroupVersionResource{Version: "v1", Resource: "namespaces"}

	t.Run("creates a missing namespace", func(t *testing.T) {
		c, dyn := newTestClient(t)

		require.NoError(t, c.EnsureNamespace(ctx, "team-a"))

		_, err := dyn.Resource(namespaceGVR).Get(ctx, "team-a", metav1.GetOptions{})
		assert.NoError(t, err)
	})

	t.Run("existing namespace is left alone", func(t *testing.T) {
		existing := &corev1.Namespace{ObjectMeta: metav1.ObjectMeta{Name: "team-a"}}
		c, _ := newTestClient(t, existing)

		assert.NoError(t, c.EnsureNamespace(ctx, "team-a"))
	})

	t.Run("default namespace is a no-op", func(t *testing.T) {
		c, dyn := newTestClient(t)

		require.NoError(t, c.EnsureNamespace(ctx, "default"))

		_, err := dyn.Resource(namespaceGVR).Get(ctx, "default", metav1.GetOptions{})
		assert.Error(t, err)
	})
}

func TestGetResource(t *testing.T) {
	ctx := context.Background()
	existing := &corev1.ConfigMap{
		ObjectMeta: metav1.ObjectMeta{Name: "settings", Namespace: "team-a"},
		Data:       map[string]string{"key": "value"},
	}
	c, _ := newTestClient(t, existing)

	live, err := c.GetResource(ctx, newConfigMap("settings", "team-a", nil), "team-a")
	require.NoError(t, err)
	assert.Equal(t, "settings", live.GetName())

	_, err = c.GetResource(ctx, newConfigMap("missing", "team-a", nil), "team-a")
	assert.Error(t, err)
}
