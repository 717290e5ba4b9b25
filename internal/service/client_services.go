package service

import (
	"github.com/MKhiriev/go-tabpfn-client/internal/adapter"
	"github.com/MKhiriev/go-tabpfn-client/internal/config"
	"github.com/MKhiriev/go-tabpfn-client/internal/crypto"
	"github.com/MKhiriev/go-tabpfn-client/internal/logger"
	"github.com/MKhiriev/go-tabpfn-client/internal/store"
)

type ClientServices struct {
	AuthService      UserAuthService
	InferenceService InferenceService
}

// NewClientServices wires both services to one adapter and one local cache.
// The auth service owns localStore and closes it.
func NewClientServices(localStore *store.ClientStorages, serviceClient adapter.ServiceClient, cfg config.ClientApp, logger *logger.Logger) *ClientServices {
	fp := crypto.NewFingerprinter()

	return &ClientServices{
		AuthService:      NewClientAuthService(serviceClient, localStore, fp, cfg, localStore, logger),
		InferenceService: NewClientInferenceService(serviceClient, localStore.TrainSets, fp, logger),
	}
}
