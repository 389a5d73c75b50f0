package assessment

import (
	"errors"
	"testing"
	"time"

	"github.com/dhtuganov/transformation-portal-sub002/internal/models"
)

// runToComplete drives a session with a fixed response policy.
func runToComplete(t *testing.T, sess *Session, policy func(*models.AssessmentItem) int) {
	t.Helper()
	item, err := sess.NextItem()
	for err == nil {
		if recErr := sess.RecordResponse(item.ID, policy(item), time.Now()); recErr != nil {
			t.Fatalf("RecordResponse(%d): %v", item.ID, recErr)
		}
		item, err = sess.NextItem()
	}
	if !errors.Is(err, ErrSessionComplete) {
		t.Fatalf("session loop ended with %v, want ErrSessionComplete", err)
	}
}

// favorFirstPole always answers with maximum agreement toward the
// dimension's first-listed pole.
func favorFirstPole(item *models.AssessmentItem) int {
	if item.Pole == models.DimensionPoles[item.Dimension][0] {
		return 5
	}
	return 1
}

func TestSessionFullRunProducesENTJ(t *testing.T) {
	sess := NewSession("s1", 7, fixtureBank(t), DefaultParams())
	runToComplete(t, sess, favorFirstPole)

	profile, err := sess.Profile()
	if err != nil {
		t.Fatalf("Profile: %v", err)
	}
	if profile.TypeCode != "ENTJ" {
		t.Errorf("TypeCode = %q, want ENTJ", profile.TypeCode)
	}
	if len(profile.Dimensions) != 4 {
		t.Fatalf("got %d dimension results, want 4", len(profile.Dimensions))
	}
	for _, dr := range profile.Dimensions {
		if dr.Confidence <= 0.5 {
			t.Errorf("dimension %s confidence = %f, want > 0.5", dr.Dimension, dr.Confidence)
		}
		if dr.ItemsUsed != 5 {
			t.Errorf("dimension %s used %d items, want 5", dr.Dimension, dr.ItemsUsed)
		}
	}
}

func TestSessionDeterministicAcrossRuns(t *testing.T) {
	first := NewSession("a", 1, fixtureBank(t), DefaultParams())
	runToComplete(t, first, favorFirstPole)
	firstProfile, _ := first.Profile()

	for run := 0; run < 3; run++ {
		sess := NewSession("b", 1, fixtureBank(t), DefaultParams())
		runToComplete(t, sess, favorFirstPole)
		profile, _ := sess.Profile()
		if profile.TypeCode != firstProfile.TypeCode {
			t.Fatalf("run %d produced %q, first run produced %q", run, profile.TypeCode, firstProfile.TypeCode)
		}
	}
}

func TestSessionNeutralAnswersTieToSecondPoles(t *testing.T) {
	sess := NewSession("s1", 7, fixtureBank(t), DefaultParams())
	runToComplete(t, sess, func(*models.AssessmentItem) int { return 3 })

	profile, err := sess.Profile()
	if err != nil {
		t.Fatalf("Profile: %v", err)
	}
	// theta == 0 resolves to the second-listed pole of every dimension.
	if profile.TypeCode != "ISFP" {
		t.Errorf("TypeCode = %q, want ISFP for all-neutral answers", profile.TypeCode)
	}
}

func TestSessionStopsAtItemCap(t *testing.T) {
	// Twelve energy items so the hard cap, not pool exhaustion, ends the
	// dimension; alternating answers keep the standard error noisy.
	items := fixtureItems()
	id := int64(100)
	for i := 0; i < 12; i++ {
		items = append(items, models.AssessmentItem{
			ID:             id,
			Dimension:      models.DimensionEnergy,
			Pole:           "E",
			Text:           "fixture",
			Difficulty:     -2.2 + 0.4*float64(i),
			Discrimination: 1.5,
		})
		id++
	}
	bank, err := NewItemBank(items)
	if err != nil {
		t.Fatalf("NewItemBank: %v", err)
	}

	p := DefaultParams()
	sess := NewSession("s1", 7, bank, p)

	flip := 0
	for {
		d, ok := sess.CurrentDimension()
		if !ok || d != models.DimensionEnergy {
			break
		}
		item, err := sess.NextItem()
		if err != nil {
			t.Fatalf("NextItem: %v", err)
		}
		value := 5
		if flip%2 == 1 {
			value = 1
		}
		flip++
		if err := sess.RecordResponse(item.ID, value, time.Now()); err != nil {
			t.Fatalf("RecordResponse: %v", err)
		}
	}

	if n := len(sess.Responses(models.DimensionEnergy)); n != p.MaxItemsPerDimension {
		t.Errorf("energy dimension used %d items, want cap %d", n, p.MaxItemsPerDimension)
	}
	if !sess.ShouldStop(models.DimensionEnergy) {
		t.Error("ShouldStop = false after hitting the item cap")
	}
	if _, se := sess.Theta(models.DimensionEnergy); se <= p.PrecisionThreshold {
		t.Errorf("se = %f, expected to remain above precision threshold %f", se, p.PrecisionThreshold)
	}
}

func TestSessionStopsOnPrecision(t *testing.T) {
	// Highly discriminating items reach the precision threshold exactly at
	// the minimum item floor.
	items := fixtureItems()
	id := int64(200)
	for i := 0; i < 6; i++ {
		items = append(items, models.AssessmentItem{
			ID:             id,
			Dimension:      models.DimensionEnergy,
			Pole:           "E",
			Text:           "fixture",
			Difficulty:     0,
			Discrimination: 3.2,
		})
		id++
	}
	bank, err := NewItemBank(items)
	if err != nil {
		t.Fatalf("NewItemBank: %v", err)
	}

	p := DefaultParams()
	sess := NewSession("s1", 7, bank, p)

	answered := 0
	flip := 0
	for {
		d, ok := sess.CurrentDimension()
		if !ok || d != models.DimensionEnergy {
			break
		}
		item, err := sess.NextItem()
		if err != nil {
			t.Fatalf("NextItem: %v", err)
		}
		value := 5
		if flip%2 == 1 {
			value = 1
		}
		flip++
		if err := sess.RecordResponse(item.ID, value, time.Now()); err != nil {
			t.Fatalf("RecordResponse: %v", err)
		}
		answered++
		if answered > 20 {
			t.Fatal("energy dimension never stopped")
		}
	}

	if answered != p.MinItemsPerDimension {
		t.Errorf("stopped after %d items, want precision stop at the floor of %d", answered, p.MinItemsPerDimension)
	}
	if _, se := sess.Theta(models.DimensionEnergy); se > p.PrecisionThreshold {
		t.Errorf("se = %f, want <= %f at precision stop", se, p.PrecisionThreshold)
	}
}

func TestSessionStoppingIsSticky(t *testing.T) {
	sess := NewSession("s1", 7, fixtureBank(t), DefaultParams())
	runToComplete(t, sess, favorFirstPole)

	for _, d := range models.DimensionOrder {
		if !sess.ShouldStop(d) {
			t.Errorf("ShouldStop(%s) = false after completion", d)
		}
	}
}

func TestSessionRejectsResponsesAfterComplete(t *testing.T) {
	sess := NewSession("s1", 7, fixtureBank(t), DefaultParams())
	runToComplete(t, sess, favorFirstPole)

	before, err := sess.Profile()
	if err != nil {
		t.Fatalf("Profile: %v", err)
	}
	beforeCode := before.TypeCode

	if err := sess.RecordResponse(1, 5, time.Now()); !errors.Is(err, ErrSessionComplete) {
		t.Errorf("RecordResponse on complete session = %v, want ErrSessionComplete", err)
	}
	if _, err := sess.NextItem(); !errors.Is(err, ErrSessionComplete) {
		t.Errorf("NextItem on complete session = %v, want ErrSessionComplete", err)
	}

	after, _ := sess.Profile()
	if after.TypeCode != beforeCode {
		t.Errorf("finalized result changed from %q to %q", beforeCode, after.TypeCode)
	}
}

func TestSessionRejectsDuplicateAndForeignItems(t *testing.T) {
	sess := NewSession("s1", 7, fixtureBank(t), DefaultParams())

	item, err := sess.NextItem()
	if err != nil {
		t.Fatalf("NextItem: %v", err)
	}
	if err := sess.RecordResponse(item.ID, 5, time.Now()); err != nil {
		t.Fatalf("RecordResponse: %v", err)
	}

	// Same item again within the dimension.
	if err := sess.RecordResponse(item.ID, 5, time.Now()); err == nil {
		t.Error("duplicate administration accepted")
	}

	// Item from a later dimension while energy is current.
	if err := sess.RecordResponse(6, 5, time.Now()); err == nil {
		t.Error("response for a non-current dimension accepted")
	}

	// Unknown item id.
	if err := sess.RecordResponse(999, 5, time.Now()); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("unknown item = %v, want ErrItemNotFound", err)
	}

	// Out-of-scale value.
	if err := sess.RecordResponse(2, 9, time.Now()); err == nil {
		t.Error("out-of-scale value accepted")
	}
}
