package xcproj

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/xcproj/format"
	"github.com/signadot/xcproj/ir"
)

const demo = `// !$*UTF8*$!
{
	archiveVersion = 1;
	classes = {
	};
	objectVersion = 46;
	objects = {

/* Begin PBXBuildFile section */
		B001 /* main.c in Sources */ = {isa = PBXBuildFile; fileRef = F001 /* main.c */; };
/* End PBXBuildFile section */

/* Begin PBXContainerItemProxy section */
		C001 /* PBXContainerItemProxy */ = {
			isa = PBXContainerItemProxy;
			containerPortal = P001 /* Project object */;
			proxyType = 1;
			remoteGlobalIDString = T002;
			remoteInfo = App;
		};
/* End PBXContainerItemProxy section */

/* Begin PBXFileReference section */
		F001 /* main.c */ = {isa = PBXFileReference; lastKnownFileType = sourcecode.c.c; path = main.c; sourceTree = "<group>"; };
		F002 /* en */ = {isa = PBXFileReference; lastKnownFileType = text.plist.strings; name = en; path = en.lproj/Localizable.strings; sourceTree = "<group>"; };
		F003 /* App */ = {isa = PBXFileReference; explicitFileType = "compiled.mach-o.executable"; includeInIndex = 0; path = App; sourceTree = BUILT_PRODUCTS_DIR; };
		F004 /* Makefile */ = {isa = PBXFileReference; lastKnownFileType = text; path = Makefile; sourceTree = "<group>"; usesTabs = 1; };
/* End PBXFileReference section */

/* Begin PBXGroup section */
		G001 = {
			isa = PBXGroup;
			children = (
				F001 /* main.c */,
				F004 /* Makefile */,
				V001 /* Localizable.strings */,
				G002 /* Products */,
			);
			sourceTree = "<group>";
		};
		G002 /* Products */ = {
			isa = PBXGroup;
			children = (
				F003 /* App */,
			);
			name = Products;
			sourceTree = "<group>";
		};
/* End PBXGroup section */

/* Begin PBXLegacyTarget section */
		T001 /* Tool */ = {
			isa = PBXLegacyTarget;
			buildArgumentsString = "$(ACTION)";
			buildConfigurationList = L002 /* Build configuration list for PBXLegacyTarget "Tool" */;
			buildPhases = (
				S002 /* Generate */,
			);
			buildToolPath = /usr/bin/make;
			dependencies = (
				D001 /* PBXTargetDependency */,
			);
			name = Tool;
			passBuildSettingsInEnvironment = 1;
			productName = Tool;
		};
/* End PBXLegacyTarget section */

/* Begin PBXNativeTarget section */
		T002 /* App */ = {
			isa = PBXNativeTarget;
			buildConfigurationList = L003 /* Build configuration list for PBXNativeTarget "App" */;
			buildPhases = (
				S001 /* Sources */,
			);
			buildRules = (
			);
			dependencies = (
			);
			name = App;
			productName = App;
			productReference = F003 /* App */;
			productType = "com.apple.product-type.tool";
		};
/* End PBXNativeTarget section */

/* Begin PBXProject section */
		P001 /* Project object */ = {
			isa = PBXProject;
			attributes = {
				LastUpgradeCheck = 1500;
			};
			buildConfigurationList = L001 /* Build configuration list for PBXProject "Demo" */;
			compatibilityVersion = "Xcode 3.2";
			developmentRegion = en;
			hasScannedForEncodings = 0;
			knownRegions = (
				en,
				Base,
			);
			mainGroup = G001;
			productRefGroup = G002 /* Products */;
			projectDirPath = "";
			projectRoot = "";
			targets = (
				T002 /* App */,
				T001 /* Tool */,
			);
		};
/* End PBXProject section */

/* Begin PBXShellScriptBuildPhase section */
		S002 /* Generate */ = {
			isa = PBXShellScriptBuildPhase;
			buildActionMask = 2147483647;
			files = (
			);
			inputPaths = (
			);
			name = Generate;
			outputPaths = (
			);
			runOnlyForDeploymentPostprocessing = 0;
			shellPath = /bin/sh;
			shellScript = "make gen\n";
		};
/* End PBXShellScriptBuildPhase section */

/* Begin PBXSourcesBuildPhase section */
		S001 /* Sources */ = {
			isa = PBXSourcesBuildPhase;
			buildActionMask = 2147483647;
			files = (
				B001 /* main.c in Sources */,
			);
			runOnlyForDeploymentPostprocessing = 0;
		};
/* End PBXSourcesBuildPhase section */

/* Begin PBXTargetDependency section */
		D001 /* PBXTargetDependency */ = {
			isa = PBXTargetDependency;
			target = T002 /* App */;
			targetProxy = C001 /* PBXContainerItemProxy */;
		};
/* End PBXTargetDependency section */

/* Begin PBXVariantGroup section */
		V001 /* Localizable.strings */ = {
			isa = PBXVariantGroup;
			children = (
				F002 /* en */,
			);
			name = Localizable.strings;
			sourceTree = "<group>";
		};
/* End PBXVariantGroup section */

/* Begin XCBuildConfiguration section */
		K001 /* Debug */ = {
			isa = XCBuildConfiguration;
			buildSettings = {
				ONLY_ACTIVE_ARCH = YES;
				SDKROOT = macosx;
			};
			name = Debug;
		};
		K002 /* Debug */ = {
			isa = XCBuildConfiguration;
			buildSettings = {
				OTHER_CFLAGS = (
					"-DDEBUG",
					"-g",
				);
				PRODUCT_NAME = "$(TARGET_NAME)";
			};
			name = Debug;
		};
		K003 /* Debug */ = {
			isa = XCBuildConfiguration;
			buildSettings = {
				PRODUCT_NAME = "$(TARGET_NAME)";
			};
			name = Debug;
		};
/* End XCBuildConfiguration section */

/* Begin XCConfigurationList section */
		L001 /* Build configuration list for PBXProject "Demo" */ = {
			isa = XCConfigurationList;
			buildConfigurations = (
				K001 /* Debug */,
			);
			defaultConfigurationIsVisible = 0;
			defaultConfigurationName = Debug;
		};
		L002 /* Build configuration list for PBXLegacyTarget "Tool" */ = {
			isa = XCConfigurationList;
			buildConfigurations = (
				K002 /* Debug */,
			);
			defaultConfigurationIsVisible = 0;
			defaultConfigurationName = Debug;
		};
		L003 /* Build configuration list for PBXNativeTarget "App" */ = {
			isa = XCConfigurationList;
			buildConfigurations = (
				K003 /* Debug */,
			);
			defaultConfigurationIsVisible = 0;
			defaultConfigurationName = Debug;
		};
/* End XCConfigurationList section */
	};
	rootObject = P001 /* Project object */;
}
`

func mustUnmarshal(t *testing.T, d string, opts ...Option) *Document {
	t.Helper()
	doc, err := Unmarshal([]byte(d), opts...)
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestMarshalRoundTrip(t *testing.T) {
	doc := mustUnmarshal(t, demo)
	if doc.Name != "Demo" {
		t.Errorf("name %q", doc.Name)
	}
	if doc.Objects.Len() != 21 {
		t.Errorf("got %d objects", doc.Objects.Len())
	}
	out, err := Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(demo, string(out)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestEncodeIdempotent(t *testing.T) {
	doc := mustUnmarshal(t, demo)
	first := Encode(doc)
	again, err := Decode(first)
	if err != nil {
		t.Fatal(err)
	}
	second := Encode(again)
	if !ir.Equal(first, second) {
		t.Errorf("re-encoding changed the value tree")
	}
	for _, ref := range doc.Objects.References() {
		a, _ := doc.Objects.Get(ref)
		b, _ := again.Objects.Get(ref)
		if !Equal(a, b) {
			t.Errorf("%s: decode(encode(x)) != x", ref)
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	doc := mustUnmarshal(t, demo)
	js, err := Marshal(doc, WithFormat(format.JSONFormat))
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Contains(js, []byte("/*")) {
		t.Errorf("json has comments")
	}
	back, err := Unmarshal(js, WithFormat(format.JSONFormat), WithProjectName("Demo"))
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(Encode(doc), Encode(back)) {
		t.Errorf("json round trip changed the document")
	}
	out, err := Marshal(back)
	if err != nil {
		t.Fatal(err)
	}
	// comments are derived again from the typed records
	for _, want := range []string{
		`B001 /* main.c in Sources */ = {isa = PBXBuildFile; fileRef = F001 /* main.c */; };`,
		`L001 /* Build configuration list for PBXProject "Demo" */ = {`,
		`T002 /* App */ = {`,
		`rootObject = P001 /* Project object */;`,
	} {
		if !bytes.Contains(out, []byte(want)) {
			t.Errorf("missing %s", want)
		}
	}
}

func TestRenameUpdatesComments(t *testing.T) {
	doc := mustUnmarshal(t, demo)
	tool, ok := Lookup[*LegacyTarget](doc.Objects, "T001")
	if !ok {
		t.Fatal("no T001")
	}
	tool.Name = "Builder"
	out, err := Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		`T001 /* Builder */ = {`,
		`L002 /* Build configuration list for PBXLegacyTarget "Builder" */ = {`,
		`buildConfigurationList = L002 /* Build configuration list for PBXLegacyTarget "Builder" */;`,
		`T001 /* Builder */,`,
	} {
		if !bytes.Contains(out, []byte(want)) {
			t.Errorf("missing %s", want)
		}
	}
}

func TestRemovedPhaseLeavesTargets(t *testing.T) {
	doc := mustUnmarshal(t, demo)
	app, ok := Lookup[*NativeTarget](doc.Objects, "T002")
	if !ok {
		t.Fatal("T002 is not a native target")
	}
	if app.ProductReference == nil || *app.ProductReference != "F003" {
		t.Errorf("product reference %v", app.ProductReference)
	}
	if diff := cmp.Diff([]string(nil), doc.Objects.Dangling()); diff != "" {
		t.Errorf("dangling before removal (-want +got):\n%s", diff)
	}
	doc.Objects.Remove("S001")
	if diff := cmp.Diff([]string{"S001"}, doc.Objects.Dangling()); diff != "" {
		t.Errorf("dangling (-want +got):\n%s", diff)
	}
	out, err := Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Contains(out, []byte("S001 /* Sources */")) {
		t.Errorf("stale phase comment in\n%s", out)
	}
	for _, want := range []string{
		"\t\t\t\tS001,\n",
		"\t\tB001 = {isa = PBXBuildFile;",
	} {
		if !bytes.Contains(out, []byte(want)) {
			t.Errorf("missing %q", want)
		}
	}
}

func TestQuotedOwnerName(t *testing.T) {
	doc := mustUnmarshal(t, demo)
	tool, _ := Lookup[*LegacyTarget](doc.Objects, "T001")
	tool.Name = `My "T"`
	out, err := Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}
	want := `L002 /* Build configuration list for PBXLegacyTarget "My "T"" */ = {`
	if !bytes.Contains(out, []byte(want)) {
		t.Errorf("missing %s", want)
	}

	named := NewDocument(`A "B" \ C`)
	named.RootObject = "P001"
	named.Objects = doc.Objects
	out, err = Marshal(named)
	if err != nil {
		t.Fatal(err)
	}
	if back := mustUnmarshal(t, string(out)); back.Name != `A "B" \ C` {
		t.Errorf("name %q", back.Name)
	}
}

func TestDecodeDocumentDefaults(t *testing.T) {
	doc := mustUnmarshal(t, `{objects = {}; rootObject = P001;}`)
	if doc.ArchiveVersion != 1 || doc.ObjectVersion != 46 {
		t.Errorf("versions %d %d", doc.ArchiveVersion, doc.ObjectVersion)
	}
	if doc.Classes == nil || doc.Classes.Type != ir.ObjectType {
		t.Errorf("classes %v", doc.Classes)
	}
	if _, ok := doc.Project(); ok {
		t.Errorf("dangling root object resolved")
	}
}

func TestDecodeDocumentErrors(t *testing.T) {
	tests := []struct {
		in    string
		kind  ErrorKind
		field string
	}{
		{`{rootObject = P001;}`, MissingField, "objects"},
		{`{objects = {};}`, MissingField, "rootObject"},
		{`{objects = (); rootObject = P001;}`, InvalidField, "objects"},
		{`(a, b)`, InvalidRecord, ""},
	}
	for _, tt := range tests {
		doc, err := Unmarshal([]byte(tt.in))
		if doc != nil {
			t.Errorf("%s: got a document", tt.in)
		}
		var de *DecodeError
		if !errors.As(err, &de) {
			t.Errorf("%s: got %v", tt.in, err)
			continue
		}
		if de.Kind != tt.kind || de.Field != tt.field {
			t.Errorf("%s: got %s %q", tt.in, de.Kind, de.Field)
		}
	}
}

func TestDecodePartial(t *testing.T) {
	doc, err := Unmarshal([]byte(`{
	objects = {
		AAAA = {isa = PBXLegacyTarget; name = Tool; };
		BBBB = {isa = PBXLegacyTarget; };
		CCCC = {name = NoIsa; };
		DDDD = notARecord;
	};
	rootObject = AAAA;
}`))
	if doc == nil {
		t.Fatal("no document")
	}
	var des DecodeErrors
	if !errors.As(err, &des) {
		t.Fatalf("got %v", err)
	}
	if diff := cmp.Diff([]string{"BBBB", "CCCC", "DDDD"}, des.References()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if !errors.Is(err, ErrMissingField) || !errors.Is(err, ErrInvalidRecord) {
		t.Errorf("sentinels not matched: %v", err)
	}
	if diff := cmp.Diff([]string{"AAAA"}, doc.Objects.References()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestNewDocument(t *testing.T) {
	doc := NewDocument("Solo")
	doc.RootObject = "P001"
	doc.Objects.Add(&Project{Base: Base{Ref: "P001"}, MainGroup: "G001", BuildConfigurationList: Ptr("L001")})
	doc.Objects.Add(NewGroup("G001"))
	doc.Objects.Add(NewConfigurationList("L001"))
	out, err := Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}
	want := `L001 /* Build configuration list for PBXProject "Solo" */ = {`
	if !bytes.Contains(out, []byte(want)) {
		t.Errorf("missing %s in\n%s", want, out)
	}
	back := mustUnmarshal(t, string(out))
	if back.Name != "Solo" {
		t.Errorf("name %q", back.Name)
	}
}
