package kube

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/api/meta"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/labels"
	"k8s.io/apimachinery/pkg/runtime/schema"
	k8syaml "k8s.io/apimachinery/pkg/util/yaml"
	"k8s.io/client-go/discovery"
	"k8s.io/client-go/discovery/cached/memory"
	"k8s.io/client-go/dynamic"
	"k8s.io/client-go/restmapper"

	"github.com/coxswain-io/coxswain/common"
)

// ApplyOptions control how a single resource is written to the cluster.
type ApplyOptions struct {
	// DryRun runs the request server-side without persisting it.
	DryRun bool
	// Validate requests strict field validation. When false unknown and
	// duplicate fields are ignored, matching kubectl --validate=false.
	Validate bool
}

// Client is the cluster-facing half of the reconciler: it loads declared
// manifests from disk, observes live state by label and writes resources
// through the dynamic client.
type Client interface {
	LoadManifests(path string) ([]*unstructured.Unstructured, error)
	GetResourcesWithLabel(ctx context.Context, label map[string]string) ([]*unstructured.Unstructured, error)
	GetResource(ctx context.Context, obj *unstructured.Unstructured, namespace string) (*unstructured.Unstructured, error)
	ApplyResource(ctx context.Context, obj *unstructured.Unstructured, namespace string, opts ApplyOptions) error
	DeleteResource(ctx context.Context, obj *unstructured.Unstructured, namespace string) error
	EnsureNamespace(ctx context.Context, name string) error
	SetLabelsForResources(resources []*unstructured.Unstructured, labels map[string]string) error
}

type client struct {
	discoveryClient discovery.DiscoveryInterface
	dynClientSet    dynamic.Interface
	mapper          meta.RESTMapper
	listLimiter     *rate.Limiter
}

func NewClient(discoveryClient discovery.DiscoveryInterface, dynClientSet dynamic.Interface) Client {
	var mapper meta.RESTMapper
	if discoveryClient != nil {
		mapper = restmapper.NewDeferredDiscoveryRESTMapper(memory.NewMemCacheClient(discoveryClient))
	}

	return &client{
		discoveryClient: discoveryClient,
		dynClientSet:    dynClientSet,
		mapper:          mapper,
		listLimiter:     rate.NewLimiter(rate.Limit(common.DefaultListQPS), common.DefaultListBurst),
	}
}

// LoadManifests walks a directory tree and decodes every YAML or JSON
// document into an unstructured object. The load is all or nothing: one
// malformed document fails the whole call so a broken revision never gets
// partially applied.
func (c *client) LoadManifests(dir string) ([]*unstructured.Unstructured, error) {
	var objs []*unstructured.Unstructured

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		// Skip directories
		if info.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml", ".json":
		default:
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		dec := k8syaml.NewYAMLOrJSONDecoder(bytes.NewReader(content), 4096)
		for {
			var obj unstructured.Unstructured
			if err := dec.Decode(&obj); err != nil {
				if errors.Is(err, io.EOF) {
					break
				}
				return fmt.Errorf("failed to decode %s: %w", path, err)
			}

			// Empty and comment-only documents decode into nothing
			if len(obj.Object) == 0 {
				continue
			}
			if obj.GetAPIVersion() == "" || obj.GetKind() == "" || obj.GetName() == "" {
				return fmt.Errorf("manifest %s is missing apiVersion, kind or metadata.name", path)
			}

			objs = append(objs, &obj)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return objs, nil
}

// GetResourcesWithLabel lists every listable, non-subresource API type for
// objects carrying the given label, one goroutine per discovered group.
func (c *client) GetResourcesWithLabel(ctx context.Context, label map[string]string) ([]*unstructured.Unstructured, error) {
	if c.discoveryClient == nil || c.dynClientSet == nil {
		return nil, fmt.Errorf("kubernetes clients are not configured")
	}
	if len(label) == 0 {
		return nil, fmt.Errorf("label is empty")
	}

	listOption := metav1.ListOptions{
		LabelSelector: labels.Set(label).String(),
	}

	// Get the list of all API resources available
	serverResources, err := c.discoveryClient.ServerPreferredResources()
	if err != nil {
		// Discovery of individual groups can fail (stale APIService) while
		// the rest of the result remains usable.
		if len(serverResources) == 0 {
			return nil, fmt.Errorf("failed to discover server resources: %w", err)
		}
		log.Warnf("Partial server resource discovery: %s", err)
	}

	var objs []*unstructured.Unstructured
	var wg sync.WaitGroup
	var lock sync.Mutex

	wg.Add(len(serverResources))
	for _, group := range serverResources {
		go func(group *metav1.APIResourceList) {
			defer wg.Done()

			gv, err := schema.ParseGroupVersion(group.GroupVersion)
			if err != nil {
				log.Warnf("Skipping unparsable group version %s: %s", group.GroupVersion, err)
				return
			}

			for _, resource := range group.APIResources {
				// Skip subresources like pod/logs, pod/status
				if strings.Contains(resource.Name, "/") {
					continue
				}
				if !listable(resource) {
					continue
				}

				if err := c.listLimiter.Wait(ctx); err != nil {
					return
				}

				gvr := gv.WithResource(resource.Name)
				list, err := c.dynClientSet.Resource(gvr).List(ctx, listOption)
				if err != nil {
					log.Warnf("Error listing resource %s: %s", gvr.String(), err)
					continue
				}

				lock.Lock()
				for i := range list.Items {
					objs = append(objs, &list.Items[i])
				}
				lock.Unlock()
			}
		}(group)
	}
	wg.Wait()

	return objs, nil
}

// GetResource reads the live object backing obj. API errors are returned
// unwrapped so callers can test them with apierrors.IsNotFound.
func (c *client) GetResource(ctx context.Context, obj *unstructured.Unstructured, namespace string) (*unstructured.Unstructured, error) {
	ri, err := c.resourceInterface(obj, namespace)
	if err != nil {
		return nil, err
	}

	return ri.Get(ctx, obj.GetName(), metav1.GetOptions{})
}

// ApplyResource creates the object, or replaces it if it already exists.
func (c *client) ApplyResource(ctx context.Context, obj *unstructured.Unstructured, namespace string, opts ApplyOptions) error {
	ri, err := c.resourceInterface(obj, namespace)
	if err != nil {
		return err
	}

	fieldValidation := metav1.FieldValidationStrict
	if !opts.Validate {
		fieldValidation = metav1.FieldValidationIgnore
	}
	var dryRun []string
	if opts.DryRun {
		dryRun = []string{metav1.DryRunAll}
	}

	existing, err := ri.Get(ctx, obj.GetName(), metav1.GetOptions{})
	if err != nil {
		if !apierrors.IsNotFound(err) {
			return fmt.Errorf("failed to get %s %q: %w", obj.GetKind(), obj.GetName(), err)
		}

		_, err = ri.Create(ctx, obj, metav1.CreateOptions{
			DryRun:          dryRun,
			FieldValidation: fieldValidation,
		})
		if err != nil {
			return fmt.Errorf("failed to create %s %q: %w", obj.GetKind(), obj.GetName(), err)
		}

		return nil
	}

	// Replacing an object requires the current resourceVersion
	obj = obj.DeepCopy()
	obj.SetResourceVersion(existing.GetResourceVersion())
	_, err = ri.Update(ctx, obj, metav1.UpdateOptions{
		DryRun:          dryRun,
		FieldValidation: fieldValidation,
	})
	if err != nil {
		return fmt.Errorf("failed to update %s %q: %w", obj.GetKind(), obj.GetName(), err)
	}

	return nil
}

// DeleteResource removes the object with foreground propagation. A missing
// object counts as success so prune stays idempotent.
func (c *client) DeleteResource(ctx context.Context, obj *unstructured.Unstructured, namespace string) error {
	ri, err := c.resourceInterface(obj, namespace)
	if err != nil {
		return err
	}

	propagation := metav1.DeletePropagationForeground
	err = ri.Delete(ctx, obj.GetName(), metav1.DeleteOptions{
		PropagationPolicy: &propagation,
	})
	if err != nil && !apierrors.IsNotFound(err) {
		return fmt.Errorf("failed to delete %s %q: %w", obj.GetKind(), obj.GetName(), err)
	}

	return nil
}

var namespaceGVR = schema.GroupVersionResource{Version: "v1", Resource: "namespaces"}

// EnsureNamespace creates the namespace if it does not exist yet.
func (c *client) EnsureNamespace(ctx context.Context, name string) error {
	if c.dynClientSet == nil {
		return fmt.Errorf("kubernetes clients are not configured")
	}
	if name == "" || name == metav1.NamespaceDefault {
		return nil
	}

	_, err := c.dynClientSet.Resource(namespaceGVR).Get(ctx, name, metav1.GetOptions{})
	if err == nil {
		return nil
	}
	if !apierrors.IsNotFound(err) {
		return fmt.Errorf("failed to get namespace %q: %w", name, err)
	}

	ns := &unstructured.Unstructured{
		Object: map[string]interface{}{
			"apiVersion": "v1",
			"kind":       "Namespace",
			"metadata": map[string]interface{}{
				"name": name,
			},
		},
	}
	_, err = c.dynClientSet.Resource(namespaceGVR).Create(ctx, ns, metav1.CreateOptions{})
	if err != nil && !apierrors.IsAlreadyExists(err) {
		return fmt.Errorf("failed to create namespace %q: %w", name, err)
	}

	return nil
}

// SetLabelsForResources merges the given labels into each resource, keeping
// labels that are already present.
func (c *client) SetLabelsForResources(resources []*unstructured.Unstructured, set map[string]string) error {
	for _, r := range resources {
		merged := r.GetLabels()
		if merged == nil {
			merged = make(map[string]string, len(set))
		}
		for k, v := range set {
			merged[k] = v
		}
		r.SetLabels(merged)
	}

	return nil
}

func (c *client) resourceInterface(obj *unstructured.Unstructured, namespace string) (dynamic.ResourceInterface, error) {
	if c.dynClientSet == nil || c.mapper == nil {
		return nil, fmt.Errorf("kubernetes clients are not configured")
	}

	gvk := obj.GroupVersionKind()
	mapping, err := c.mapper.RESTMapping(gvk.GroupKind(), gvk.Version)
	if err != nil {
		// The kind may have appeared after the discovery cache was filled,
		// e.g. a CRD applied earlier in the same pass.
		if d, ok := c.mapper.(*restmapper.DeferredDiscoveryRESTMapper); ok {
			d.Reset()
			mapping, err = c.mapper.RESTMapping(gvk.GroupKind(), gvk.Version)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to map %s: %w", gvk.String(), err)
		}
	}

	if mapping.Scope.Name() == meta.RESTScopeNameNamespace {
		ns := obj.GetNamespace()
		if ns == "" {
			ns = namespace
		}
		if ns == "" {
			ns = metav1.NamespaceDefault
		}
		return c.dynClientSet.Resource(mapping.Resource).Namespace(ns), nil
	}

	return c.dynClientSet.Resource(mapping.Resource), nil
}

func listable(r metav1.APIResource) bool {
	for _, v := range r.Verbs {
		if v == "list" {
			return true
		}
	}
	return false
}
