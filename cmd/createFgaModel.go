// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/openfga/go-sdk/client"
	"github.com/spf13/cobra"
	corev1 "k8s.io/api/core/v1"
	k8serrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"

	"github.com/canonical/workspace-service/internal/authorization"
	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/openfga"
	"github.com/canonical/workspace-service/internal/tracing"
)

const (
	StoreName = "workspace-service"

	storeIDKey = "OPENFGA_STORE_ID"
	modelIDKey = "OPENFGA_AUTHORIZATION_MODEL_ID"
)

// fgaModelIDs identifies the deployed workspace authorization model
type fgaModelIDs struct {
	StoreID string `json:"store_id"`
	ModelID string `json:"model_id"`
}

var createFgaModelCmd = &cobra.Command{
	Use:   "create-fga-model",
	Short: "Creates the workspace openfga model",
	Long: `Writes the workspace authorization model (owner, member and invite
management relations) to openfga, creating the store when none is given.
The resulting IDs can be published to a Kubernetes ConfigMap read by serve.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		apiURL, _ := cmd.Flags().GetString("fga-api-url")
		apiToken, _ := cmd.Flags().GetString("fga-api-token")
		storeID, _ := cmd.Flags().GetString("fga-store-id")
		format, _ := cmd.Flags().GetString("format")
		verbose, _ := cmd.Flags().GetBool("verbose")
		configMapResource, _ := cmd.Flags().GetString("store-k8s-configmap-resource")
		kubeconfigPath, _ := cmd.Flags().GetString("kubeconfig")

		ctx := cmd.Context()

		ids, err := writeWorkspaceModel(ctx, apiURL, apiToken, storeID, verbose)
		if err != nil {
			return err
		}

		if configMapResource != "" {
			namespace, name, err := splitConfigMapResource(configMapResource)
			if err != nil {
				return err
			}

			clientset, err := kubernetesClient(kubeconfigPath)
			if err != nil {
				return err
			}

			if err := publishModelIDs(ctx, clientset, namespace, name, ids); err != nil {
				return fmt.Errorf("failed to update configmap: %w", err)
			}
			cmd.Printf("ConfigMap %s updated successfully\n", configMapResource)
		}

		if format == "json" {
			return json.NewEncoder(cmd.OutOrStdout()).Encode(ids)
		}

		cmd.Printf("Created model: %s\n", ids.ModelID)
		if storeID == "" {
			cmd.Printf("Created store: %s\n", ids.StoreID)
		}

		return nil
	},
}

func init() {
	createFgaModelCmd.Flags().String("fga-api-url", "", "The openfga API URL")
	createFgaModelCmd.Flags().String("fga-api-token", "", "The openfga API token")
	createFgaModelCmd.Flags().String("fga-store-id", "", "The openfga store to create the model in, if empty one will be created")
	createFgaModelCmd.Flags().String("format", "text", "Output format (text or json)")
	createFgaModelCmd.Flags().BoolP("verbose", "v", false, "Enable verbose logging")
	createFgaModelCmd.Flags().String("store-k8s-configmap-resource", "", "The configmap resource to store the FGA Store ID and Model ID, format: namespace/name")
	createFgaModelCmd.Flags().String("kubeconfig", "", "Path to the kubeconfig file (optional, defaults to in-cluster config)")
	_ = createFgaModelCmd.MarkFlagRequired("fga-api-url")
	_ = createFgaModelCmd.MarkFlagRequired("fga-api-token")

	rootCmd.AddCommand(createFgaModelCmd)
}

func writeWorkspaceModel(ctx context.Context, apiURL, apiToken, storeID string, verbose bool) (fgaModelIDs, error) {
	logger := logging.NewNoopLogger()
	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor("", logger)

	u, err := url.Parse(apiURL)
	if err != nil {
		return fgaModelIDs{}, fmt.Errorf("failed to parse url: %w", err)
	}

	fgaClient := openfga.NewClient(
		openfga.NewConfig(u.Scheme, u.Host, storeID, apiToken, "", verbose, tracer, monitor, logger),
	)

	if storeID == "" {
		if storeID, err = fgaClient.CreateStore(ctx, StoreName); err != nil {
			return fgaModelIDs{}, fmt.Errorf("failed to create store: %w", err)
		}

		fgaClient.SetStoreID(ctx, storeID)
	}

	model := authorization.NewAuthorizationModelProvider("v0").GetModel()
	if model == nil {
		return fgaModelIDs{}, fmt.Errorf("failed to load authorization model")
	}

	modelID, err := fgaClient.WriteModel(
		ctx,
		&client.ClientWriteAuthorizationModelRequest{
			TypeDefinitions: model.TypeDefinitions,
			SchemaVersion:   model.SchemaVersion,
			Conditions:      model.Conditions,
		},
	)
	if err != nil {
		return fgaModelIDs{}, fmt.Errorf("failed to write model: %w", err)
	}

	return fgaModelIDs{StoreID: storeID, ModelID: modelID}, nil
}

func splitConfigMapResource(resource string) (string, string, error) {
	namespace, name, ok := strings.Cut(resource, "/")
	if !ok || namespace == "" || name == "" || strings.Contains(name, "/") {
		return "", "", fmt.Errorf("invalid configmap resource format: %s, expected namespace/name", resource)
	}

	return namespace, name, nil
}

func kubernetesClient(kubeconfigPath string) (kubernetes.Interface, error) {
	var (
		config *rest.Config
		err    error
	)

	switch {
	case kubeconfigPath != "":
		config, err = clientcmd.BuildConfigFromFlags("", kubeconfigPath)
	default:
		config, err = rest.InClusterConfig()
		if err != nil {
			// outside a cluster fall back to the default kubeconfig loading rules
			config, err = clientcmd.NewNonInteractiveDeferredLoadingClientConfig(
				clientcmd.NewDefaultClientConfigLoadingRules(),
				&clientcmd.ConfigOverrides{},
			).ClientConfig()
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load kubeconfig: %w", err)
	}

	clientset, err := kubernetes.NewForConfig(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create kubernetes client: %w", err)
	}

	return clientset, nil
}

// publishModelIDs upserts the openfga store and model IDs into a ConfigMap,
// keeping any other keys it holds
func publishModelIDs(ctx context.Context, clientset kubernetes.Interface, namespace, name string, ids fgaModelIDs) error {
	configMaps := clientset.CoreV1().ConfigMaps(namespace)

	cm, err := configMaps.Get(ctx, name, metav1.GetOptions{})
	if k8serrors.IsNotFound(err) {
		cm = &corev1.ConfigMap{
			ObjectMeta: metav1.ObjectMeta{Name: name, Namespace: namespace},
			Data:       map[string]string{storeIDKey: ids.StoreID, modelIDKey: ids.ModelID},
		}

		if _, err := configMaps.Create(ctx, cm, metav1.CreateOptions{}); err != nil {
			return fmt.Errorf("failed to create configmap %s/%s: %w", namespace, name, err)
		}

		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to get configmap %s/%s: %w", namespace, name, err)
	}

	if cm.Data == nil {
		cm.Data = make(map[string]string)
	}

	cm.Data[storeIDKey] = ids.StoreID
	cm.Data[modelIDKey] = ids.ModelID

	if _, err := configMaps.Update(ctx, cm, metav1.UpdateOptions{}); err != nil {
		return fmt.Errorf("failed to update configmap %s/%s: %w", namespace, name, err)
	}

	return nil
}
