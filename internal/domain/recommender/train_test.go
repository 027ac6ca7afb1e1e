package recommender

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const tolerance = 1e-9

func TestCreateDummyDataIsFreshAndFixed(t *testing.T) {
	first := CreateDummyData()
	require.Len(t, first, 9)
	first[0].Subject = "mutated"

	second := CreateDummyData()
	require.Equal(t, "python", second[0].Subject)
	require.Equal(t, int64(5), second[8].ItemID)
	require.Equal(t, "c++", second[8].Subject)
}

func TestTokenizeDropsShortWordsAndStopWords(t *testing.T) {
	stop := stopWordSet(VectorizerConfig{StopWords: StopWordsEnglish})
	require.Equal(t, []string{"advanced"}, tokenize("c++ advanced", stop))
	require.Equal(t, []string{"python", "beginner"}, tokenize("Python the BEGINNER", stop))
	require.Equal(t, []string{"go_lang", "101"}, tokenize("go_lang, 101!", stop))
}

func TestStopWordSetPresets(t *testing.T) {
	none := stopWordSet(VectorizerConfig{StopWords: StopWordsNone, ExtraStopWords: []string{" Java "}})
	require.Len(t, none, 1)
	require.Contains(t, none, "java")

	english := stopWordSet(VectorizerConfig{StopWords: StopWordsEnglish})
	require.Contains(t, english, "the")
	require.NotContains(t, english, "python")
}

func TestTrainModelDerivesContent(t *testing.T) {
	records := CreateDummyData()
	model, err := TrainModel(records, VectorizerConfig{StopWords: StopWordsEnglish})
	require.NoError(t, err)

	require.Len(t, model.Records, len(records))
	for i, rec := range model.Records {
		require.Equal(t, rec.Subject+" "+string(rec.Level), rec.Content)
		require.Empty(t, records[i].Content, "input must not be mutated")
	}
	require.Equal(t, []string{"advanced", "beginner", "intermediate", "java", "python"}, model.Vocabulary)
	require.Equal(t, len(records), model.Matrix.Dim())
}

func TestSimilarityMatrixProperties(t *testing.T) {
	model, err := TrainModel(CreateDummyData(), VectorizerConfig{StopWords: StopWordsEnglish})
	require.NoError(t, err)

	m := model.Matrix
	for i := 0; i < m.Dim(); i++ {
		require.InDelta(t, 1.0, m.At(i, i), tolerance)
		for j := 0; j < m.Dim(); j++ {
			require.Equal(t, m.At(i, j), m.At(j, i))
			require.GreaterOrEqual(t, m.At(i, i)+tolerance, m.At(i, j))
		}
	}
	require.InDelta(t, 1.0, m.At(0, 5), tolerance)
	require.InDelta(t, 0.0, m.At(0, 4), tolerance)
	require.InDelta(t, 0.0, m.At(4, 8), tolerance)
	require.InDelta(t, 1.0, m.At(4, 7), tolerance)
}

func TestTrainModelIsDeterministic(t *testing.T) {
	cfg := VectorizerConfig{StopWords: StopWordsEnglish}
	first, err := TrainModel(CreateDummyData(), cfg)
	require.NoError(t, err)
	second, err := TrainModel(CreateDummyData(), cfg)
	require.NoError(t, err)

	require.Equal(t, first.Matrix.values, second.Matrix.values)
	require.NotEqual(t, first.ID, second.ID)
}

func TestTrainModelUsesClock(t *testing.T) {
	pinned := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	model, err := trainModel(CreateDummyData(), VectorizerConfig{}, func() time.Time { return pinned })
	require.NoError(t, err)
	require.Equal(t, pinned, model.TrainedAt)
}

func TestTrainModelErrors(t *testing.T) {
	_, err := TrainModel(nil, VectorizerConfig{})
	require.Error(t, err)
	require.False(t, IsEmptyVocabulary(err))

	_, err = TrainModel([]InteractionRecord{{UserID: 1, ItemID: 1, Subject: "python"}}, VectorizerConfig{})
	require.Error(t, err)

	allStop := []InteractionRecord{
		{UserID: 1, ItemID: 1, InteractionType: InteractionView, Subject: "the", Level: "a"},
		{UserID: 1, ItemID: 2, InteractionType: InteractionView, Subject: "c++", Level: "and"},
	}
	_, err = TrainModel(allStop, VectorizerConfig{StopWords: StopWordsEnglish})
	require.True(t, IsEmptyVocabulary(err))
}

func TestAllStopWordRowHasZeroDiagonal(t *testing.T) {
	records := []InteractionRecord{
		{UserID: 1, ItemID: 1, InteractionType: InteractionView, Subject: "python", Level: LevelBeginner},
		{UserID: 1, ItemID: 2, InteractionType: InteractionView, Subject: "c++", Level: "the"},
	}
	model, err := TrainModel(records, VectorizerConfig{StopWords: StopWordsEnglish})
	require.NoError(t, err)
	require.InDelta(t, 1.0, model.Matrix.At(0, 0), tolerance)
	require.Zero(t, model.Matrix.At(1, 1))
}
