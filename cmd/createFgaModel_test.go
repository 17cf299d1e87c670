// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes/fake"
)

func TestSplitConfigMapResource(t *testing.T) {
	tests := []struct {
		resource  string
		namespace string
		name      string
		expectErr bool
	}{
		{resource: "iam/workspace-fga", namespace: "iam", name: "workspace-fga"},
		{resource: "workspace-fga", expectErr: true},
		{resource: "/workspace-fga", expectErr: true},
		{resource: "iam/", expectErr: true},
		{resource: "iam/a/b", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.resource, func(t *testing.T) {
			namespace, name, err := splitConfigMapResource(tt.resource)

			if tt.expectErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.namespace, namespace)
			require.Equal(t, tt.name, name)
		})
	}
}

func TestPublishModelIDs(t *testing.T) {
	ids := fgaModelIDs{StoreID: "store-1", ModelID: "model-1"}

	t.Run("creates the configmap", func(t *testing.T) {
		clientset := fake.NewSimpleClientset()

		require.NoError(t, publishModelIDs(context.Background(), clientset, "iam", "workspace-fga", ids))

		cm, err := clientset.CoreV1().ConfigMaps("iam").Get(context.Background(), "workspace-fga", metav1.GetOptions{})
		require.NoError(t, err)
		require.Equal(t, "store-1", cm.Data[storeIDKey])
		require.Equal(t, "model-1", cm.Data[modelIDKey])
	})

	t.Run("updates and keeps other keys", func(t *testing.T) {
		clientset := fake.NewSimpleClientset(&corev1.ConfigMap{
			ObjectMeta: metav1.ObjectMeta{Name: "workspace-fga", Namespace: "iam"},
			Data:       map[string]string{storeIDKey: "old-store", "LOG_LEVEL": "debug"},
		})

		require.NoError(t, publishModelIDs(context.Background(), clientset, "iam", "workspace-fga", ids))

		cm, err := clientset.CoreV1().ConfigMaps("iam").Get(context.Background(), "workspace-fga", metav1.GetOptions{})
		require.NoError(t, err)
		require.Equal(t, "store-1", cm.Data[storeIDKey])
		require.Equal(t, "model-1", cm.Data[modelIDKey])
		require.Equal(t, "debug", cm.Data["LOG_LEVEL"])
	})
}

func TestValidMigrateArgs(t *testing.T) {
	tests := []struct {
		args      []string
		expectErr bool
	}{
		{args: nil},
		{args: []string{"up"}},
		{args: []string{"status"}},
		{args: []string{"check"}},
		{args: []string{"down"}},
		{args: []string{"down", "20260105120000"}},
		{args: []string{"down", "-1"}, expectErr: true},
		{args: []string{"up", "3"}, expectErr: true},
		{args: []string{"sideways"}, expectErr: true},
		{args: []string{"down", "1", "2"}, expectErr: true},
	}

	for _, tt := range tests {
		err := validMigrateArgs(migrateCmd, tt.args)

		if tt.expectErr {
			require.Error(t, err, "args %v", tt.args)
		} else {
			require.NoError(t, err, "args %v", tt.args)
		}
	}
}
