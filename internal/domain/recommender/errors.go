package recommender

import apperrors "github.com/yanqian/course-recommender/pkg/errors"

// IsInvalidUser reports whether err means the user has no usable history.
func IsInvalidUser(err error) bool {
	return apperrors.IsCode(err, apperrors.CodeInvalidUser)
}

// IsEmptyVocabulary reports whether training found no terms to vectorize.
func IsEmptyVocabulary(err error) bool {
	return apperrors.IsCode(err, apperrors.CodeEmptyVocabulary)
}

// IsNotTrained reports whether the service was asked to recommend before training.
func IsNotTrained(err error) bool {
	return apperrors.IsCode(err, apperrors.CodeNotTrained)
}
