package cvstore

import "jobboard-backend/internal/cvgen"

// CV is a stored CV document; it shares the generated record's shape.
type CV = cvgen.CVRecord
