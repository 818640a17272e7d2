package devices

import (
	"os"
	"path/filepath"
	"testing"
)

func tempStore(t *testing.T) *IniProfileStore {
	t.Helper()

	store, err := NewIniProfileStore(filepath.Join(t.TempDir(), "controllers.ini"))
	if err != nil {
		t.Fatalf("NewIniProfileStore: %v", err)
	}
	return store
}

func TestIniProfileStore_LoadAllMissingFile(t *testing.T) {
	store := tempStore(t)

	all, err := store.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("expected empty store, got %v", all)
	}
}

func TestIniProfileStore_SaveRoundTrip(t *testing.T) {
	store := tempStore(t)

	if err := store.Save("aa:bb:cc", JoyConPair); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Save("dd:ee:ff", Handheld); err != nil {
		t.Fatalf("Save: %v", err)
	}

	all, err := store.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 entries, got %v", all)
	}
	if all["aa:bb:cc"] != JoyConPair || all["dd:ee:ff"] != Handheld {
		t.Errorf("unexpected mappings: %v", all)
	}
}

func TestIniProfileStore_SavePreservesOtherEntries(t *testing.T) {
	store := tempStore(t)

	if err := store.Save("aa:bb:cc", ProController); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Save("aa:bb:cc", JoyConLeft); err != nil {
		t.Fatalf("Save: %v", err)
	}

	all, err := store.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if all["aa:bb:cc"] != JoyConLeft {
		t.Errorf("expected overwrite to joycon-left, got %v", all["aa:bb:cc"])
	}
}

func TestIniProfileStore_SaveRequiresID(t *testing.T) {
	store := tempStore(t)

	if err := store.Save("", ProController); err == nil {
		t.Error("expected error for empty id")
	}
}

func TestIniProfileStore_LookupHitsCacheAfterSave(t *testing.T) {
	store := tempStore(t)

	if err := store.Save("aa:bb:cc", JoyConRight); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// delete the backing file; the cached entry must still resolve
	if err := os.Remove(store.path); err != nil {
		t.Fatalf("Remove: %v", err)
	}

	got, ok := store.Lookup("aa:bb:cc")
	if !ok || got != JoyConRight {
		t.Errorf("expected cached joycon-right, got %v ok=%v", got, ok)
	}

	if _, ok := store.Lookup("never-seen"); ok {
		t.Error("expected miss for unknown identity")
	}
}

func TestIniProfileStore_LoadAllSkipsUnknownTypes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "controllers.ini")
	contents := "[aa:bb:cc]\ntype = pro-controller\n\n[dd:ee:ff]\ntype = hologram\n"
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	store, err := NewIniProfileStore(path)
	if err != nil {
		t.Fatalf("NewIniProfileStore: %v", err)
	}

	all, err := store.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(all) != 1 || all["aa:bb:cc"] != ProController {
		t.Errorf("expected only the known entry, got %v", all)
	}
}
