package repository

// SequenceRepository entrega consecutivos por organización y tipo de
// documento mediante un contador atómico en la base de datos (UPDATE ...
// RETURNING), en lugar de count(*)+1 que colisiona bajo concurrencia.
type SequenceRepository interface {
	Next(orgID, docType string) (int64, error)
}
