package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/stmbudget/sales-planning-api/internal/domain"
	"github.com/stmbudget/sales-planning-api/internal/usecases/cataloging"
	"github.com/stmbudget/sales-planning-api/pkg/apiErrors"
)

// writeCatalogError converte erros do caso de uso na resposta HTTP padronizada
func writeCatalogError(w http.ResponseWriter, err error) {
	var catalogErr *cataloging.CatalogError
	if errors.As(err, &catalogErr) {
		apiErrors.WriteError(w, catalogErr.Code, catalogErr.Error(), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao processar catálogo", nil)
}

// ListCustomers lista os clientes visíveis para o ator
func ListCustomers(service cataloging.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := actorFromRequest(w, r)
		if !ok {
			return
		}

		onlyActive := false
		if value := queryBool(r, "only_active"); value != nil {
			onlyActive = *value
		}

		customers, err := service.ListCustomers(actor, onlyActive)
		if err != nil {
			logrus.Error(err)
			writeCatalogError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(customers); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// GetCustomer retorna um cliente por ID
func GetCustomer(service cataloging.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		customer, err := service.GetCustomer(id)
		if err != nil {
			logrus.Error(err)
			writeCatalogError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(customer); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// CreateCustomer cadastra um novo cliente
func CreateCustomer(service cataloging.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateCustomer")

		var customer domain.Customer
		if err := json.NewDecoder(r.Body).Decode(&customer); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		created, err := service.CreateCustomer(&customer)
		if err != nil {
			logrus.Error(err)
			writeCatalogError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(created); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// UpdateCustomer atualiza parcialmente um cliente
func UpdateCustomer(service cataloging.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateCustomer")

		var request domain.UpdateCustomerRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		request.ID = httprouter.ParamsFromContext(r.Context()).ByName("id")

		customer, err := service.UpdateCustomer(&request)
		if err != nil {
			logrus.Error(err)
			writeCatalogError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(customer); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// ListItems lista o catálogo de itens
func ListItems(service cataloging.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		onlyActive := false
		if value := queryBool(r, "only_active"); value != nil {
			onlyActive = *value
		}

		items, err := service.ListItems(onlyActive)
		if err != nil {
			logrus.Error(err)
			writeCatalogError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(items); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// GetItem retorna um item por ID
func GetItem(service cataloging.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		item, err := service.GetItem(id)
		if err != nil {
			logrus.Error(err)
			writeCatalogError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(item); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// CreateItem cadastra um novo item
func CreateItem(service cataloging.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateItem")

		var item domain.Item
		if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		created, err := service.CreateItem(&item)
		if err != nil {
			logrus.Error(err)
			writeCatalogError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(created); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// UpdateItem atualiza parcialmente um item
func UpdateItem(service cataloging.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateItem")

		var request domain.UpdateItemRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		request.ID = httprouter.ParamsFromContext(r.Context()).ByName("id")

		item, err := service.UpdateItem(&request)
		if err != nil {
			logrus.Error(err)
			writeCatalogError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(item); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// ListItemInventory lista as posições de estoque de um item
func ListItemInventory(service cataloging.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		records, err := service.ListInventory(itemID)
		if err != nil {
			logrus.Error(err)
			writeCatalogError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(records); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// UpsertItemInventory grava a posição de estoque de um item por local
func UpsertItemInventory(service cataloging.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpsertItemInventory")

		var record domain.InventoryRecord
		if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		record.ItemID = httprouter.ParamsFromContext(r.Context()).ByName("id")

		saved, err := service.UpsertInventory(&record)
		if err != nil {
			logrus.Error(err)
			writeCatalogError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(saved); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}
