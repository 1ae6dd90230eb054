package firestore

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// isNotFound распознаёт ответ Firestore об отсутствующем документе.
func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}
