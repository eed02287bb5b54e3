package response

import (
	"errors"
	"net/http"

	"logistics/internal/service/account"
	"logistics/internal/service/booking"
	"logistics/internal/service/booking_history"
	"logistics/pkg/logger"
)

type storeErrors struct {
	name        string
	unavailable error
	permission  error
}

var stores = []storeErrors{
	{name: "booking", unavailable: booking.ErrStoreUnavailable, permission: booking.ErrStorePermission},
	{name: "account", unavailable: account.ErrStoreUnavailable, permission: account.ErrStorePermission},
	{name: "history", unavailable: booking_history.ErrStoreUnavailable, permission: booking_history.ErrStorePermission},
}

// Failure отвечает на ошибку, которую не разобрал сам хендлер.
// Недоступное хранилище дает 503, отказ хранилища в правах 500 с подсказкой оператору,
// остальное голый 500.
func Failure(w http.ResponseWriter, log errorLogger, err error) {
	for _, store := range stores {
		switch {
		case errors.Is(err, store.unavailable):
			Error(w, log, http.StatusServiceUnavailable, store.name+" store unavailable, try again later")
			return
		case errors.Is(err, store.permission):
			log.Error("store permission denied", logger.NewField("store", store.name), logger.NewField("error", err))
			Error(w, log, http.StatusInternalServerError, store.name+" store rejected service credentials, contact the operator")
			return
		}
	}
	w.WriteHeader(http.StatusInternalServerError)
}
